package vtcore

import "testing"

func collect(data []byte) []Command {
	var got []Command
	p := newParser(func(c Command) { got = append(got, c) })
	p.feed(data)
	return got
}

func TestParserPrintASCII(t *testing.T) {
	cmds := collect([]byte("Hi"))
	if len(cmds) != 2 || cmds[0].Rune != 'H' || cmds[1].Rune != 'i' {
		t.Fatalf("got %+v, want Print('H'),Print('i')", cmds)
	}
}

func TestParserUTF8MultiByte(t *testing.T) {
	cmds := collect([]byte("é")) // U+00E9, 2-byte UTF-8
	if len(cmds) != 1 || cmds[0].Kind != CmdPrint || cmds[0].Rune != 'é' {
		t.Fatalf("got %+v, want a single Print('é')", cmds)
	}
}

func TestParserInvalidUTF8EmitsReplacement(t *testing.T) {
	cmds := collect([]byte{0xFF, 'A'})
	if len(cmds) != 2 || cmds[0].Rune != '�' || cmds[1].Rune != 'A' {
		t.Fatalf("got %+v, want replacement char then 'A'", cmds)
	}
}

func TestParserCSIWithParams(t *testing.T) {
	cmds := collect([]byte("\x1b[31m"))
	if len(cmds) != 1 {
		t.Fatalf("got %d commands, want 1", len(cmds))
	}
	c := cmds[0]
	if c.Kind != CmdCSI || c.Final != 'm' || len(c.Params) != 1 || c.Params[0] != 31 {
		t.Fatalf("got %+v, want CSI final 'm' params [31]", c)
	}
}

func TestParserCSIPrivateMode(t *testing.T) {
	cmds := collect([]byte("\x1b[?1049h"))
	c := cmds[0]
	if c.Private != '?' || c.Final != 'h' || c.Params[0] != 1049 {
		t.Fatalf("got %+v, want private '?' final 'h' params [1049]", c)
	}
}

func TestParserCSINoParamsDefaultsEmpty(t *testing.T) {
	cmds := collect([]byte("\x1b[H"))
	c := cmds[0]
	if len(c.Params) != 0 {
		t.Fatalf("got params %v, want none for a bare final", c.Params)
	}
	if c.Param(0, 1) != 1 {
		t.Errorf("Param(0,1) = %d, want default 1", c.Param(0, 1))
	}
}

func TestParserOSCTerminatedByBEL(t *testing.T) {
	cmds := collect([]byte("\x1b]0;hello\x07"))
	c := cmds[0]
	if c.Kind != CmdOSC || len(c.OSCParams) != 2 || c.OSCParams[0] != "0" || c.OSCParams[1] != "hello" {
		t.Fatalf("got %+v, want OSC [0 hello]", c)
	}
}

func TestParserOSCTerminatedByST(t *testing.T) {
	cmds := collect([]byte("\x1b]4;1;?\x1b\\"))
	c := cmds[0]
	if c.Kind != CmdOSC || len(c.OSCParams) != 3 || c.OSCParams[2] != "?" {
		t.Fatalf("got %+v, want OSC [4 1 ?]", c)
	}
}

func TestParserMalformedSequenceResetsToGround(t *testing.T) {
	// A stray ESC inside OSC that isn't followed by '\' abandons the OSC
	// and is reprocessed as the start of a new escape; ASCII after it
	// keeps parsing normally rather than getting stuck.
	cmds := collect([]byte("\x1b]0;abc\x1bXq"))
	var sawQ bool
	for _, c := range cmds {
		if c.Kind == CmdPrint && c.Rune == 'q' {
			sawQ = true
		}
	}
	if !sawQ {
		t.Fatalf("got %+v, parser did not recover to ground after malformed OSC", cmds)
	}
}

func TestParserCharsetDesignation(t *testing.T) {
	cmds := collect([]byte("\x1b(0"))
	c := cmds[0]
	if c.Kind != CmdCharset || c.CharsetTarget != g0 || c.Final != '0' {
		t.Fatalf("got %+v, want charset designation g0='0'", c)
	}
}
