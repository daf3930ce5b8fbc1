// Package version records the quill release, it is written to each saved report
package version

// VERSION is the current quill version
const VERSION = "0.2.1"
