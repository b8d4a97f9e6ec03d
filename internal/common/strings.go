package common

// UnknownStr is printed for enum values outside their known range.
const UnknownStr = "unknown"
