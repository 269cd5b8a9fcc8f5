//go:build tinygo && !pyportal

package main

import "github.com/merliot/trng"

func attachDisplay(*trng.Runner) {}
