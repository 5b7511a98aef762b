// Package textutil provides small text helpers shared across ertnotes.
package textutil
