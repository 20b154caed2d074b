// Package vgram is your toolkit for evaluating theoretical variogram
// models and handing fitted parameters over to a covariance-model
// library — the computational core that fitting, plotting and kriging
// components build on.
//
// 🚀 What is vgram?
//
//	A small, thread-safe, pure-Go library that brings together:
//		• Model kernels: spherical, exponential, gaussian, cubic, stable, matérn
//		• Polymorphic evaluation: one call shape for a single lag or a whole grid
//		• Model translation: effective-range/sill/nugget fits → covariance-model
//		  parameters, with per-family rescale conventions handled for you
//		• A native covariance-model backend for end-to-end round trips
//
// ✨ Why choose vgram?
//
//   - Exact formulas – every family reproduces the textbook closed form,
//     double precision throughout, singular limits handled explicitly
//   - Rock-solid guarantees – no mutable shared state after init, every
//     operation safe for concurrent use without locks
//   - Pure Go – no cgo, special functions included
//   - Fail-fast – unsupported models and incompatible backends are
//     classified errors, never silent fallbacks
//
// Under the hood, everything is organized under three subpackages:
//
//	models/   — the six semivariance kernels and the vectorized evaluator
//	convert/  — describe-record translation into covariance-model parameters
//	covmodel/ — a native covariance-model library satisfying the translation
//	            contract (and a reference for third-party backends)
//
// Quick ASCII sketch of a spherical fit:
//
//	γ(h)
//	 c0+b ┤           ┌────────
//	      │       ┌───┘
//	    b ┤───┘
//	      └┬──────────┬──────── h
//	       0          r
//
// Dive into each package's doc.go for formulas, conventions and examples.
//
//	go get github.com/variolab/vgram
package vgram
