// Package config defines the format-agnostic seed model the application starts
// from, along with the Loader interface that concrete formats implement.
//
// The HCL implementation lives in the hcl package.
package config
