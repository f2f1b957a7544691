package main

var _version = "v0.1.0"
