package main

// Version is the version of the cargobump CLI.
var Version = "0.3.1"
