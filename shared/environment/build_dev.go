//go:build dev

package environment

const devBuild = true
