// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the marketplace. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderFactory: a domain service that splits a checkout cart by vendor and
//     assembles the order aggregate with generated order numbers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
