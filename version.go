package sanity

// Version is the current SDK version.
//
// This version follows semantic versioning (https://semver.org/).
// The version is incremented according to the following rules:
//   - MAJOR: Breaking changes to the public API
//   - MINOR: New features, backwards compatible
//   - PATCH: Bug fixes, backwards compatible
const Version = "0.1.0"

// DefaultAPIVersion is the API version used when a [Config] does not set
// one explicitly.
//
// Sanity versions its HTTP API by date. Pinning a version keeps response
// shapes stable across deployments; override it with
// [ConfigBuilder.APIVersion] to opt in to newer behavior.
const DefaultAPIVersion = "2021-06-07"
