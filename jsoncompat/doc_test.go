package json_test

// This package is a compatibility layer selecting encoding/json or
// encoding/json/v2 at build time. It is exercised through the root
// package tests, which round-trip every escaped payload through
// Unmarshal to prove it is still valid JSON.
