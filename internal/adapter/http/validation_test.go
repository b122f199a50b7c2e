package http

import (
	"testing"
)

func TestValidAddr(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},
		{"0xAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA", true},
		{" 0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa ", true},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false},
		{"0xgggggggggggggggggggggggggggggggggggggggg", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := validAddr(tc.in); got != tc.want {
			t.Errorf("validAddr(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestValidator_Deposit(t *testing.T) {
	v := NewValidator()

	ok := depositReq{Address: ownerAddr, Value: "2.5"}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name  string
		req   depositReq
		field string
		msg   string
	}{
		{"missing address", depositReq{Value: "1"}, "Address", "required"},
		{"bad address", depositReq{Address: "nope", Value: "1"}, "Address", "0x-prefixed"},
		{"missing value", depositReq{Address: ownerAddr}, "Value", "required"},
		{"unparseable value", depositReq{Address: ownerAddr, Value: "one"}, "Value", "positive decimal"},
		{"negative value", depositReq{Address: ownerAddr, Value: "-1"}, "Value", "positive decimal"},
		{"zero value", depositReq{Address: ownerAddr, Value: "0"}, "Value", "positive decimal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Validate(&tc.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			fields := ToFieldErrors(err)
			if !containsFieldMsg(fields, tc.field, tc.msg) {
				t.Fatalf("details = %+v, want %s %q", fields, tc.field, tc.msg)
			}
		})
	}
}

func TestValidator_CreateLoan(t *testing.T) {
	v := NewValidator()

	ok := createLoanReq{Amount: "1", DurationSeconds: 2592000}
	if err := v.Validate(&ok); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	bad := createLoanReq{Amount: "1", DurationSeconds: 0}
	err := v.Validate(&bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !containsFieldMsg(ToFieldErrors(err), "DurationSeconds", "required") {
		t.Fatalf("details = %+v", ToFieldErrors(err))
	}
}
