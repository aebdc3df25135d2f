// Package store provides the bot's file-backed data.
//
//   - IconStore: the read-only item icon table, decoded from a JSON file of
//     base64 images once at startup.
//   - Sealed secrets: a credentials map encrypted with a passphrase-derived
//     key (scrypt + ChaCha20-Poly1305) so tokens need not sit in a plaintext
//     .env file. Writes go through a temp file and an atomic rename.
package store
