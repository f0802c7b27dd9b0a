// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the canonical in-memory representation of a
// localization resource. Both directions of the entries codec, and the adapter
// that consumes the FTL syntax tree, operate over the types defined here.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - Resource: The root container. It holds the entries of one source file in
//     declaration order, and that order is part of the resource's meaning.
//
//   - Message: The only Entry kind. It pairs an identifier with an optional
//     value Pattern and optional traits.
//
//   - Pattern: The value template of a message, made of Text runs and
//     Placeables. A Placeable embeds expressions, currently only references to
//     other messages.
//
//   - Member: A labeled alternative pattern (a grammatical variant). Members are
//     part of the data shape but are not produced by the adapter yet.
//
// A Resource is built once, either from parsed source or from entries JSON,
// and is not mutated afterwards. Nothing in this package performs I/O.
package model
