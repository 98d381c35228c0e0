package commands

import "github.com/mgutz/ansi"

var red = ansi.ColorFunc("red+b")
var yellow = ansi.ColorFunc("yellow+b")
var green = ansi.ColorFunc("green+b")
var cyan = ansi.ColorFunc("cyan+b")
