package ouro

// Version is the current release of the Ouro engine.
const Version = "0.3.0"
