// SPDX-License-Identifier: MIT

package genmath

// Version is the module release reported by cmd/genbench.
const Version = "v0.1.0"
