// Package generator materialises the symlinks declared by project manifests.
//
// A Generator is built once per invocation from an immutable Params value.
// Construction validates and resolves the template root and the destination
// root; every later path is joined onto those resolved roots.
//
// Processing is sequential. Each project is loaded and linked on its own,
// so a failing project never stops the next one. Within a project a link
// that cannot be created aborts the remaining specs of that project.
//
// Every action emits exactly one line through the StatusReporter:
//
//	<link> -> OK                 link created
//	<link> -> to be recreated    something was in the way and is replaced
//	<source> does not exist      spec skipped
//	config.json not found for p  project skipped
package generator
