// Package kernel provides core domain primitives shared across the
// marketplace order domain. It implements fundamental building blocks
// following Domain-Driven Design principles: identifier and money value
// objects with enforced invariants, immutability, and validation.
//
// The package is dependency-light by design: domain model packages build on
// kernel, never the other way around.
package kernel
