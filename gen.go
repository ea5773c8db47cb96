package ux

//go:generate go run ./internal/uxgen -out .
