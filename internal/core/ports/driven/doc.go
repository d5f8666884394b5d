// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - CatalogGateway: Lists and fetches items from the remote catalog API
//   - AssetProber: Confirms a cover asset exists on the asset host
//
// # Optional Interfaces
//
// These are only needed for rating writes:
//
//   - SessionStore: Supplies the current user id
//   - RatingStore: Persists submitted ratings
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
