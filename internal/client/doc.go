// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client application runtime.
//
// Each invocation runs a single subcommand (register, login, add, list and
// so on) against the server through an [adapter.NotesClient] and prints the
// result as indented JSON.
package client
