/*
Advi starts an interactive session of the Great Underground Empire engine.

It reads in a world file and starts the game at its designated starting
position, then prints what is happening in the game to stdout and reads
player input from stdin until the game is over or the "QUIT" command is
given.

Usage:

	advi [flags]

The flags are:

	-v, --version
		Give the current version of the engine and then exit.

	-w, --world FILE
		Use the provided world resource file. Defaults to "world.advi" in
		the current working directory.

	-d, --direct
	    Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input, even if launched
		in a tty with stdin and stdout.

	-c, --command COMMANDS
		Immediately run the given command(s) at start. Can be multiple
		commands separated by the ";" character.

	-s, --seed SEED
		Seed the world's random number generator with SEED, for a
		reproducible playthrough. Defaults to a value derived from the
		current time.

	-t, --testing
		Suppress ambient atmosphere messages, for deterministic transcripts.

	--save-file FILE
		Use FILE as the sqlite-backed save-slot store for the SAVE/RESTORE
		verbs. If omitted, SAVE/RESTORE are unavailable.

Once a session has started, player input is parsed for engine commands. For
an explanation of the commands, type "HELP" once in a session. To exit the
interpreter, type "QUIT".
*/
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"greatunderground"
	"greatunderground/internal/version"
)

const (
	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode   int     = ExitSuccess
	flagVersion  *bool   = pflag.BoolP("version", "v", false, "Gives the version info")
	worldFile    *string = pflag.StringP("world", "w", "world.advi", "The world resource or manifest file that defines the world")
	forceDirect  *bool   = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	startCommand *string = pflag.StringP("command", "c", "", "Execute the given player commands immediately at start and leave the interpreter open")
	seed         *int64  = pflag.Int64P("seed", "s", 0, "Seed the RNG with this value; defaults to the current time")
	testingMode  *bool   = pflag.BoolP("testing", "t", false, "Suppress ambient atmosphere messages for deterministic transcripts")
	saveFile     *string = pflag.String("save-file", "", "sqlite file backing the SAVE/RESTORE verbs; unset disables them")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	var startCommands []string
	if *startCommand != "" {
		startCommands = strings.Split(*startCommand, ";")
	}

	effectiveSeed := *seed
	if effectiveSeed == 0 {
		effectiveSeed = time.Now().UnixNano()
	}

	gameEng, initErr := greatunderground.New(os.Stdin, os.Stdout, *worldFile, *forceDirect, effectiveSeed, *saveFile, *testingMode)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	if err := gameEng.RunUntilQuit(startCommands); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}
