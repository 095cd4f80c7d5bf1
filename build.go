//go:build ignore

// ====================================================
// build script
//
// usage :
//	go run build.go [target]
//
// valid targets :
//	desktop (default)
//	web
//	all
//
// web target builds a wasm binary in to ./web_build
// together with wasm_exec.js and an index.html,
// ready to be served as a static site
// (see run_web.go for a quick local server)
// ====================================================

package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jbiccler/minesweeper/misc"
)

const WebBuildDir = "web_build"

func PrintUsage() {
	scriptName := misc.GetScriptName()

	fmt.Printf("\n")
	fmt.Printf("Usage of %s:\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("go run %s [target]\n", scriptName)
	fmt.Printf("\n")
	fmt.Printf("valid targets:\n")
	fmt.Printf("  desktop\n")
	fmt.Printf("  web\n")
	fmt.Printf("  all\n")
	fmt.Printf("\n")
}

func main() {
	args := os.Args[1:]

	buildTarget := "desktop"

	if len(args) == 1 {
		buildTarget = args[0]
	} else if len(args) > 1 {
		misc.ErrLogger.Printf("too many arguments")
		PrintUsage()
		os.Exit(1)
	}

	switch buildTarget {
	case "help", "-help", "--help", "h", "-h", "--h":
		PrintUsage()
		os.Exit(1)
	case "desktop", "web", "all":
		// pass
	default:
		misc.ErrLogger.Printf("%s is not a valid target", buildTarget)
		PrintUsage()
		os.Exit(1)
	}

	if buildTarget == "desktop" || buildTarget == "all" {
		if err := BuildDesktop(); err != nil {
			misc.ErrLogger.Printf("desktop build failed: %v", err)
			os.Exit(1)
		}
	}

	if buildTarget == "web" || buildTarget == "all" {
		if err := BuildWeb(); err != nil {
			misc.ErrLogger.Printf("web build failed: %v", err)
			os.Exit(1)
		}
	}
}

func BuildDesktop() error {
	out := "minesweeper"
	if runtime.GOOS == "windows" {
		out += ".exe"
	}

	misc.InfoLogger.Printf("building %s", out)

	cmd := exec.Command("go", "build", "-o", out, ".")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

func BuildWeb() error {
	if err := misc.MkDir(WebBuildDir); err != nil {
		return err
	}

	misc.InfoLogger.Printf("building %s", filepath.Join(WebBuildDir, "minesweeper.wasm"))

	cmd := exec.Command(
		"go", "build",
		"-o", filepath.Join(WebBuildDir, "minesweeper.wasm"),
		".",
	)
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return err
	}

	// wasm_exec.js ships with the Go toolchain
	goroot, err := exec.Command("go", "env", "GOROOT").Output()
	if err != nil {
		return err
	}

	wasmExec := filepath.Join(
		strings.TrimSpace(string(goroot)), "lib", "wasm", "wasm_exec.js")
	if exists, _ := misc.CheckFileExists(wasmExec); !exists {
		// pre go 1.24 location
		wasmExec = filepath.Join(
			strings.TrimSpace(string(goroot)), "misc", "wasm", "wasm_exec.js")
	}

	misc.InfoLogger.Printf("copying %s", wasmExec)
	if err := misc.CopyFile(wasmExec, filepath.Join(WebBuildDir, "wasm_exec.js")); err != nil {
		return err
	}

	misc.InfoLogger.Printf("writing %s", filepath.Join(WebBuildDir, "index.html"))
	return os.WriteFile(
		filepath.Join(WebBuildDir, "index.html"), []byte(indexHtml), 0644)
}

const indexHtml = `<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<title>Minesweeper</title>
	<style>
		html, body {
			margin: 0;
			padding: 0;
			width: 100%;
			height: 100%;
			overflow: hidden;
			background: #1a1a1a;
		}
	</style>
</head>
<body>
	<script src="wasm_exec.js"></script>
	<script>
		const go = new Go();
		WebAssembly.instantiateStreaming(
			fetch("minesweeper.wasm"), go.importObject
		).then((result) => {
			go.run(result.instance);
		});
	</script>
</body>
</html>
`
