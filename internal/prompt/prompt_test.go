package prompt

import (
	"bytes"
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestReadLoanTerms(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	p := New(strings.NewReader("1200\n 12 \n1\n"), &out)

	terms, err := ReadLoanTerms(p)
	is.NoErr(err)
	is.Equal(terms.Principal, 1200.0)
	is.Equal(terms.AnnualRatePercent, 12.0)
	is.Equal(terms.TermPeriods, 12)
	is.Equal(out.String(), PrincipalPrompt+"\n"+RatePrompt+"\n"+TermPrompt+"\n")
}

func TestReadLoanTerms_LastLineWithoutNewline(t *testing.T) {
	is := is.New(t)

	terms, err := ReadLoanTerms(New(strings.NewReader("1000\r\n0\r\n30"), io.Discard))
	is.NoErr(err)
	is.Equal(terms.TermPeriods, 360)
}

func TestReadLoanTerms_ParseErrors(t *testing.T) {
	for _, tc := range []struct {
		name  string
		input string
		field string
		want  error
	}{
		{name: "principal not a number", input: "abc\n5\n10\n", field: "principal", want: strconv.ErrSyntax},
		{name: "empty rate", input: "1000\n\n10\n", field: "annual interest rate", want: strconv.ErrSyntax},
		{name: "fractional years", input: "1000\n5\n2.5\n", field: "loan term", want: strconv.ErrSyntax},
		{name: "negative years", input: "1000\n5\n-1\n", field: "loan term", want: strconv.ErrSyntax},
		{name: "years overflow", input: "1000\n5\n18446744073709551615\n", field: "loan term", want: strconv.ErrRange},
		{name: "input ends early", input: "1000\n", field: "annual interest rate", want: io.EOF},
	} {
		t.Run(tc.name, func(t *testing.T) {
			is := is.New(t)

			_, err := ReadLoanTerms(New(strings.NewReader(tc.input), io.Discard))
			var perr *InputParseError
			is.True(errors.As(err, &perr))
			is.Equal(perr.Field, tc.field)
			is.True(errors.Is(err, tc.want))
		})
	}
}

func TestInputParseError_Message(t *testing.T) {
	is := is.New(t)

	err := &InputParseError{Field: "principal", Input: "abc", Err: strconv.ErrSyntax}
	is.Equal(err.Error(), `could not parse principal from "abc": invalid syntax`)

	err = &InputParseError{Field: "loan term", Err: io.EOF}
	is.Equal(err.Error(), "could not read loan term: EOF")
}
