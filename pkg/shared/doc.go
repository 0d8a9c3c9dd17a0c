// Package shared provides the common plumbing the demo packages build
// on: network name normalization, Hedera client construction, operator
// credential loading from the environment or a .env file, and private
// key parsing.
package shared
