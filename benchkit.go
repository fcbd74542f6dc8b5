package benchkit

// Version is the toolkit release version, printed by `benchkit version`.
const Version = "1.1.0"
