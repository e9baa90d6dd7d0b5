package textdir

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Direction
	}{
		{"empty", "", LTR},
		{"english", "What is the largest ocean?", LTR},
		{"digits and punctuation", "1 + 2 = 3?", LTR},
		{"arabic", "أكبر جزء في الدماغ؟", RTL},
		{"hebrew", "שלום עולם", RTL},
		{"arabic presentation forms", "ﭑ", RTL},
		{"mixed latin and arabic", "Question: ما هو؟", RTL},
		{"cyrillic", "Привет", LTR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.text); got != tc.want {
				t.Errorf("Detect(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestIsRTL(t *testing.T) {
	if IsRTL("plain text") {
		t.Error("IsRTL(plain text) = true")
	}
	if !IsRTL("تشريح عصبي") {
		t.Error("IsRTL(arabic) = false")
	}
}

func TestDirection_String(t *testing.T) {
	if LTR.String() != "ltr" || RTL.String() != "rtl" {
		t.Errorf("String() = %q/%q, want ltr/rtl", LTR.String(), RTL.String())
	}
}
