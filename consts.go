package ux

// nativeBits is the width of the widest backing type.
const nativeBits = 64
