package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"
	"time"

	"golang.org/x/net/context"
	"golang.org/x/sync/errgroup"
)

type namedReader interface {
	io.ReadCloser
	Name() string
}

var (
	in  namedReader    = os.Stdin
	out io.WriteCloser = os.Stdout
)

func parseFlags() {
	flag.Parse()

	args := flag.Args()

	if len(args) > 0 {
		name := args[0]
		f, err := os.Open(name)
		if err != nil {
			log.Fatalf("failed to open %v: %v", name, err)
		}
		args = args[1:]
		in = f
	}

	if len(args) > 0 {
		name := args[0]
		f, err := os.Create(name)
		if err != nil {
			log.Fatalf("failed to create %v: %v", name, err)
		}
		args = args[1:]
		out = f
	}
}

func main() {
	ctx := context.Background()
	parseFlags()

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	eg, ctx := errgroup.WithContext(ctx)

	methods := make(chan builderMethod)

	// gofmt reads from a pipe that render writes into
	pr, pw := io.Pipe()

	eg.Go(func() error {
		defer out.Close()
		gofmt := exec.CommandContext(ctx, "gofmt")
		gofmt.Stdin = pr
		gofmt.Stdout = out
		gofmt.Stderr = os.Stderr
		if err := gofmt.Run(); err != nil {
			return fmt.Errorf("gofmt run failed: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		defer close(methods)
		defer in.Close()
		return scan(ctx, in, methods)
	})

	eg.Go(func() (rerr error) {
		defer func() { pw.CloseWithError(rerr) }()
		var all []builderMethod
		for method := range methods {
			all = append(all, method)
		}
		return render(pw, in.Name(), all)
	})

	if err := eg.Wait(); err != nil {
		log.Fatalln(err)
	}
}

// builderMethod is a vmTestCase method like withX or expectX that takes
// arguments; each gets a withVMX or expectVMX wrapper for use with
// vmTestCase.apply.
type builderMethod struct {
	base   string // "with" or "expect"
	what   string
	params []param
}

type param struct {
	name, typ string
}

func (p param) variadic() bool { return strings.HasPrefix(p.typ, "...") }

var builderMethodPattern = regexp.MustCompile(`^func \(vmt vmTestCase\) (expect|with)(.+?)\((.+?)\) vmTestCase`)

func scan(ctx context.Context, r io.Reader, methods chan<- builderMethod) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		match := builderMethodPattern.FindStringSubmatch(sc.Text())
		if len(match) == 0 {
			continue
		}
		method := builderMethod{base: match[1], what: match[2]}
		for _, part := range strings.Split(match[3], ",") {
			fields := strings.Fields(part)
			if len(fields) != 2 {
				return fmt.Errorf("unsupported parameter %q in %v%v; every parameter must be named and typed", part, method.base, method.what)
			}
			method.params = append(method.params, param{fields[0], fields[1]})
		}
		select {
		case methods <- method:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return sc.Err()
}

var qualifiedIdent = regexp.MustCompile(`\b([a-z][a-z0-9]*)\.[A-Z]`)

func render(w io.Writer, from string, methods []builderMethod) error {
	var buf bytes.Buffer
	buf.Grow(1024)
	buf.WriteString("package main\n\n")
	fmt.Fprintf(&buf, "// @generated from %v\n\n", from)

	if args := flag.Args(); len(args) >= 2 {
		fmt.Fprintf(&buf, "//go:generate go run scripts/gen_vm_expects.go -- %v\n\n", strings.Join(args, " "))
	}

	imports := make(map[string]struct{})
	for _, method := range methods {
		for _, p := range method.params {
			for _, match := range qualifiedIdent.FindAllStringSubmatch(p.typ, -1) {
				imports[match[1]] = struct{}{}
			}
		}
	}
	if len(imports) > 0 {
		names := make([]string, 0, len(imports))
		for name := range imports {
			names = append(names, name)
		}
		sort.Strings(names)
		buf.WriteString("import (\n")
		for _, name := range names {
			fmt.Fprintf(&buf, "%q\n", name)
		}
		buf.WriteString(")\n\n")
	}

	for _, method := range methods {
		decls := make([]string, len(method.params))
		args := make([]string, len(method.params))
		for i, p := range method.params {
			decls[i] = p.name + " " + p.typ
			args[i] = p.name
			if p.variadic() {
				args[i] += "..."
			}
		}
		fmt.Fprintf(&buf, "func %vVM%v(%v) func(vmTestCase) vmTestCase {\n", method.base, method.what, strings.Join(decls, ", "))
		buf.WriteString("return func(vmt vmTestCase) vmTestCase {\n")
		fmt.Fprintf(&buf, "return vmt.%v%v(%v)\n", method.base, method.what, strings.Join(args, ", "))
		buf.WriteString("}\n}\n\n")
	}

	_, err := buf.WriteTo(w)
	return err
}
