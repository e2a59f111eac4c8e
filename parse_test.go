package main

import (
	"testing"

	"gonum.org/v1/gonum/num/quat"

	"rotviz/rotation"
)

func TestParseTriple(t *testing.T) {
	table := []struct {
		in   string
		want rotation.Point3
	}{
		{"2,1,1", rotation.Point3{X: 2, Y: 1, Z: 1}},
		{"0,0,0", rotation.Point3{}},
		{"-1.5, 0.25, 3", rotation.Point3{X: -1.5, Y: 0.25, Z: 3}},
		{" 1 , 2 , 3 ", rotation.Point3{X: 1, Y: 2, Z: 3}},
		{"1e2,-2e-1,0", rotation.Point3{X: 100, Y: -0.2, Z: 0}},
	}

	for _, test := range table {
		t.Run(test.in, func(t *testing.T) {
			got, err := parseTriple(test.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != test.want {
				t.Errorf("parseTriple(%q) = %+v, want %+v", test.in, got, test.want)
			}
		})
	}
}

func TestParseTripleRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"1",
		"1,2",
		"1,2,3,4",
		"a,b,c",
		"1,,3",
		"1;2;3",
		"1,2,z",
	}

	for _, in := range bad {
		if _, err := parseTriple(in); err == nil {
			t.Errorf("parseTriple(%q): expected an error, got none", in)
		}
	}
}

func TestFormatPoint(t *testing.T) {
	table := []struct {
		p    rotation.Point3
		want string
	}{
		{rotation.Point3{X: 2, Y: 1, Z: 1}, "[2.0000, 1.0000, 1.0000]"},
		{rotation.Point3{X: -0.5, Y: 0.123456, Z: 100}, "[-0.5000, 0.1235, 100.0000]"},
	}

	for _, test := range table {
		if got := formatPoint(test.p); got != test.want {
			t.Errorf("formatPoint(%+v) = %q, want %q", test.p, got, test.want)
		}
	}
}

func TestFormatQuaternion(t *testing.T) {
	q := quat.Number{Real: 0.92388, Imag: 0, Jmag: 0.38268, Kmag: 0}
	if got, want := formatQuaternion(q), "[0.9239, 0.0000, 0.3827, 0.0000]"; got != want {
		t.Errorf("formatQuaternion = %q, want %q", got, want)
	}
}
