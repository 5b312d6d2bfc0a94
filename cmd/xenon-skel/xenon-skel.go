package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/xenon"
	"github.com/lestrrat-go/xenon/node"
	"github.com/lestrrat-go/xenon/s11n"
)

type cmdopts struct {
	Root       string   `long:"root" default:"root" description:"name of the document element"`
	Namespace  string   `long:"ns" description:"namespace URI for the document element"`
	Doctype    string   `long:"doctype" description:"emit a DOCTYPE with this name"`
	Encoding   string   `long:"encoding" description:"charset to encode the output in"`
	Standalone string   `long:"standalone" choice:"yes" choice:"no" description:"standalone value for the XML declaration"`
	XMLVersion string   `long:"xml-version" default:"1.0"`
	Comment    []string `long:"comment" description:"comment to place before the document element (may be repeated)"`
	PI         []string `long:"pi" description:"processing instruction target to place before the document element (may be repeated)"`
	Output     string   `long:"output" short:"o" description:"write to this file instead of stdout"`
	Version    bool     `long:"version"`
}

func main() {
	os.Exit(_main())
}

func showVersion() {
	fmt.Printf("xenon-skel: using xenon version %s\n", xenon.Version)
}

func showUsage() {
	fmt.Printf(`Usage : xenon-skel [options]
	Build a skeleton document and dump it
	--version : display the version of the library used
`)
}

func _main() int {
	opts := cmdopts{}
	if _, err := flags.ParseArgs(&opts, os.Args[1:]); err != nil {
		showUsage()
		return 1
	}

	if opts.Version {
		showVersion()
		return 0
	}

	doc, err := buildDocument(&opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	var out io.Writer = os.Stdout
	if opts.Output != "" {
		fh, err := os.Create(opts.Output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return 1
		}
		defer fh.Close()
		out = fh
	}

	var dumpOptions []s11n.DumpOption
	if opts.Encoding != "" {
		dumpOptions = append(dumpOptions, s11n.WithEncoding(opts.Encoding))
	}
	d := s11n.New(dumpOptions...)
	if err := d.DumpDoc(out, doc); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		return 1
	}

	return 0
}

func buildDocument(opts *cmdopts) (*node.Document, error) {
	impl := xenon.Implementation()

	var doctype *node.DocumentType
	if opts.Doctype != "" {
		dt, err := impl.CreateDocumentType(opts.Doctype, "", "")
		if err != nil {
			return nil, err
		}
		doctype = dt
	}

	docOptions := []node.DocumentOption{
		node.WithVersion(opts.XMLVersion),
	}
	if opts.Encoding != "" {
		docOptions = append(docOptions, node.WithEncoding(opts.Encoding))
	}
	switch opts.Standalone {
	case "yes":
		docOptions = append(docOptions, node.WithStandalone(node.StandaloneExplicitYes))
	case "no":
		docOptions = append(docOptions, node.WithStandalone(node.StandaloneExplicitNo))
	}

	doc, err := impl.CreateDocument(opts.Namespace, opts.Root, doctype, docOptions...)
	if err != nil {
		return nil, err
	}

	for _, comment := range opts.Comment {
		if err := doc.AppendChild(doc.CreateComment(comment)); err != nil {
			return nil, err
		}
	}
	for _, target := range opts.PI {
		pi, err := doc.CreatePI(target, "")
		if err != nil {
			return nil, err
		}
		if err := doc.AppendChild(pi); err != nil {
			return nil, err
		}
	}

	var root *node.Element
	if opts.Namespace != "" {
		root, err = doc.CreateElementNS(opts.Namespace, opts.Root)
	} else {
		root, err = doc.CreateElement(opts.Root)
	}
	if err != nil {
		return nil, err
	}
	if err := doc.AppendChild(root); err != nil {
		return nil, err
	}
	return doc, nil
}
