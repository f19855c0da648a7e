package main

import "fmt"

func printHelp() {
	fmt.Print(`rollcall — school attendance from the terminal

Usage:
  rollcall              open the attendance console
  rollcall login        sign in without starting the console
  rollcall logout       clear the stored session
  rollcall demo         run the bundled demo backend on :3000
  rollcall version      show version

Environment:
  ROLLCALL_API_URL          backend base URL (default http://localhost:3000/api)
  ROLLCALL_TOKEN            bearer token override (skips the stored token)
  ROLLCALL_STATE_DIR        state directory (default ~/.rollcall)
  ROLLCALL_HTTP_TIMEOUT     request timeout (default 10s)
  LOG_LEVEL, LOG_FORMAT     logging verbosity and format

Offline use:
  Sign-in falls back to the built-in demo directory whenever the backend
  cannot be reached. Demo accounts: admin@school.com, teacher@school.com,
  student@school.com — password "password123".
`)
}
