// Package compile wraps the external sing-box rule-set compiler.
package compile
