package byteio

import "strconv"

// C0Names holds mnemonics for the classic ASCII control bytes.
var C0Names = [32]string{
	"<NUL>", "<SOH>", "<STX>", "<ETX>", "<EOT>", "<ENQ>", "<ACK>", "<BEL>",
	"<BS>", "<HT>", "<LF>", "<VT>", "<FF>", "<CR>", "<SO>", "<SI>",
	"<DLE>", "<DC1>", "<DC2>", "<DC3>", "<DC4>", "<NAK>", "<SYN>", "<ETB>",
	"<CAN>", "<EM>", "<SUB>", "<ESC>", "<FS>", "<GS>", "<RS>", "<US>",
}

// C1Names holds mnemonics for the extended ISO-8859 control bytes 0x80-0x9f.
var C1Names = [32]string{
	"<PAD>", "<HOP>", "<BPH>", "<NBH>", "<IND>", "<NEL>", "<SSA>", "<ESA>",
	"<HTS>", "<HTJ>", "<VTS>", "<PLD>", "<PLU>", "<RI>", "<SS2>", "<SS3>",
	"<DCS>", "<PU1>", "<PU2>", "<STS>", "<CCH>", "<MW>", "<SPA>", "<EPA>",
	"<SOS>", "<SGCI>", "<SCI>", "<CSI>", "<ST>", "<OSC>", "<PM>", "<APC>",
}

// Mnemonic returns a short printable name for b:
// - control bytes get their <NAME> mnemonic, with <SP> and <DEL> for 0x20 and 0x7f
// - other ASCII bytes are quoted like 'A'
// - all other bytes are written in hex like 0xe9
func Mnemonic(b byte) string {
	switch {
	case b < 0x20:
		return C0Names[b]
	case b == 0x20:
		return "<SP>"
	case b == 0x7f:
		return "<DEL>"
	case b < 0x7f:
		return "'" + string(rune(b)) + "'"
	case b <= 0x9f:
		return C1Names[b-0x80]
	default:
		return "0x" + strconv.FormatUint(uint64(b), 16)
	}
}
