// Package commands defines the termcalc CLI.
//
// Commands
//
//   - termcalc           Run the interactive calculator in the terminal
//   - termcalc press     Apply a sequence of buttons and print the display
//
// The persistent flags --precision and --errors select the display policies
// shared by both commands.
package commands
