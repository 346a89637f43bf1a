// Package phonetic encodes words by how they sound and compares the codes.
package phonetic
