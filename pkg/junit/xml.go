// Package junit holds the JUnit XML document model and its renderer.
package junit

import "encoding/xml"

// Testsuites is the root node of a JUnit report.
type Testsuites struct {
	XMLName  xml.Name `xml:"testsuites"`
	Name     string   `xml:"name,attr"`
	Tests    int      `xml:"tests,attr"`
	Time     string   `xml:"time,attr"`
	Failures int      `xml:"failures,attr"`

	// Skipped is omitted entirely when zero, never rendered as skipped="0".
	Skipped int `xml:"skipped,attr,omitempty"`

	Testsuites []*Testsuite `xml:"testsuite"`
}

// Testsuite maps one run of a suite tree.
//
// The properties block, when present, is always the first child of the
// testsuite, before any testcase. Consumers must not rely on child position
// to locate testcases.
type Testsuite struct {
	XMLName   xml.Name `xml:"testsuite"`
	Name      string   `xml:"name,attr"`
	Timestamp string   `xml:"timestamp,attr"`
	Tests     int      `xml:"tests,attr"`
	File      string   `xml:"file,attr,omitempty"`
	Failures  int      `xml:"failures,attr"`
	Time      string   `xml:"time,attr"`
	Skipped   int      `xml:"skipped,attr,omitempty"`

	Properties *Properties `xml:"properties,omitempty"`
	Testcases  []*Testcase `xml:"testcase"`
}

// Properties is an optional block of custom key/value pairs.
type Properties struct {
	Properties []Property `xml:"property"`
}

// Property is a single custom key/value pair.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
}

// Testcase maps one leaf test.
type Testcase struct {
	XMLName   xml.Name `xml:"testcase"`
	Name      string   `xml:"name,attr"`
	Time      string   `xml:"time,attr"`
	Classname string   `xml:"classname,attr"`

	Failure *Failure `xml:"failure,omitempty"`
	Skipped *Skipped `xml:"skipped,omitempty"`
}

// Failure carries the failure of a testcase: the raw message in the
// attribute for brief display, and the sanitized long form in the CDATA body.
type Failure struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",cdata"`
}

// Skipped is the empty marker child of a pending testcase.
type Skipped struct{}
