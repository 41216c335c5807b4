// Package ccli drives the external casual-cli program.
//
// Every back-office operation is a subprocess call of the form
//
//	casual-cli -m <mode> <program> <command> [<id>|<flags>]
//
// The package has three parts:
//   - Args / Marshal: turn an ordered list of positional ids and flag/value
//     pairs into the argument string, dropping pairs without a value
//   - Vocabulary: the static table of programs and the commands each accepts
//   - Invoker: run the command line, capture exit code/stdout/stderr and
//     interpret stdout according to the output mode
//
// # Failure policy
//
// A nonzero exit is logged and reported as an absent (nil) result, never as an
// error. A failure to spawn the process at all is logged and reported as a
// Result carrying the text "Server error". Only undecodable output (invalid
// JSON in json mode, a malformed percent escape in html/normal mode) is
// returned as an error, so callers can fail the request.
//
// # Usage
//
//	inv, err := ccli.New(&ccli.Config{Production: true})
//	res, err := inv.Invoke(ctx, ccli.ProgramProject, "add", ccli.Args{
//	    ccli.F("-t", title),
//	    ccli.F("-d", description),
//	}, ccli.ModeValue)
package ccli
