// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// Opcode values, per spec.md 6.3's condensed table and the Apple
// TrueType instruction set it summarizes. Grounded on hint.go's opXxx
// constants (not retrieved in full in this pack), reconstructed here to
// the byte values documented at
// https://developer.apple.com/fonts/TTRefMan/RM05/Chap5.html
const (
	opSVTCA0 byte = 0x00
	opSVTCA1 byte = 0x01
	opSPVTCA0 byte = 0x02
	opSPVTCA1 byte = 0x03
	opSFVTCA0 byte = 0x04
	opSFVTCA1 byte = 0x05
	opSPVTL0 byte = 0x06
	opSPVTL1 byte = 0x07
	opSFVTL0 byte = 0x08
	opSFVTL1 byte = 0x09
	opSPVFS  byte = 0x0A
	opSFVFS  byte = 0x0B
	opGPV    byte = 0x0C
	opGFV    byte = 0x0D
	opSFVTPV byte = 0x0E
	opISECT  byte = 0x0F

	opSRP0 byte = 0x10
	opSRP1 byte = 0x11
	opSRP2 byte = 0x12
	opSZP0 byte = 0x13
	opSZP1 byte = 0x14
	opSZP2 byte = 0x15
	opSZPS byte = 0x16
	opSLOOP  byte = 0x17
	opRTG    byte = 0x18
	opRTHG   byte = 0x19
	opSMD    byte = 0x1A
	opELSE   byte = 0x1B
	opJMPR   byte = 0x1C
	opSCVTCI byte = 0x1D
	opSSWCI  byte = 0x1E
	opSSW    byte = 0x1F

	opDUP    byte = 0x20
	opPOP    byte = 0x21
	opCLEAR  byte = 0x22
	opSWAP   byte = 0x23
	opDEPTH  byte = 0x24
	opCINDEX byte = 0x25
	opMINDEX byte = 0x26
	opALIGNPTS byte = 0x27
	// 0x28 reserved
	opUTP byte = 0x29

	opLOOPCALL byte = 0x2A
	opCALL     byte = 0x2B
	opFDEF     byte = 0x2C
	opENDF     byte = 0x2D

	opMDAP0 byte = 0x2E
	opMDAP1 byte = 0x2F
	opIUP0  byte = 0x30 // interpolate Y
	opIUP1  byte = 0x31 // interpolate X
	opSHP0  byte = 0x32
	opSHP1  byte = 0x33
	opSHC0  byte = 0x34
	opSHC1  byte = 0x35
	opSHZ0  byte = 0x36
	opSHZ1  byte = 0x37
	opSHPIX byte = 0x38
	opIP    byte = 0x39
	opMSIRP0 byte = 0x3A
	opMSIRP1 byte = 0x3B
	opALIGNRP byte = 0x3C
	opRTDG    byte = 0x3D
	opMIAP0   byte = 0x3E
	opMIAP1   byte = 0x3F

	opNPUSHB byte = 0x40
	opNPUSHW byte = 0x41
	opWS     byte = 0x42
	opRS     byte = 0x43
	opWCVTP  byte = 0x44
	opRCVT   byte = 0x45
	opGC0    byte = 0x46
	opGC1    byte = 0x47
	opSCFS   byte = 0x48
	opMD0    byte = 0x49
	opMD1    byte = 0x4A
	opMPPEM  byte = 0x4B
	opMPS    byte = 0x4C

	opFLIPON  byte = 0x4D
	opFLIPOFF byte = 0x4E
	opDEBUG   byte = 0x4F

	opLT   byte = 0x50
	opLTEQ byte = 0x51
	opGT   byte = 0x52
	opGTEQ byte = 0x53
	opEQ   byte = 0x54
	opNEQ  byte = 0x55
	opODD  byte = 0x56
	opEVEN byte = 0x57
	opIF   byte = 0x58
	opEIF  byte = 0x59
	opAND  byte = 0x5A
	opOR   byte = 0x5B
	opNOT  byte = 0x5C

	opDELTAP1 byte = 0x5D
	opSDB     byte = 0x5E
	opSDS     byte = 0x5F

	opADD     byte = 0x60
	opSUB     byte = 0x61
	opDIV     byte = 0x62
	opMUL     byte = 0x63
	opABS     byte = 0x64
	opNEG     byte = 0x65
	opFLOOR   byte = 0x66
	opCEILING byte = 0x67

	opROUND00  byte = 0x68
	opROUND01  byte = 0x69
	opROUND10  byte = 0x6A
	opROUND11  byte = 0x6B
	opNROUND00 byte = 0x6C
	opNROUND01 byte = 0x6D
	opNROUND10 byte = 0x6E
	opNROUND11 byte = 0x6F

	opWCVTF   byte = 0x70
	opDELTAP2 byte = 0x71
	opDELTAP3 byte = 0x72
	opDELTAC1 byte = 0x73
	opDELTAC2 byte = 0x74
	opDELTAC3 byte = 0x75

	opSROUND   byte = 0x76
	opS45ROUND byte = 0x77

	opJROT byte = 0x78
	opJROF byte = 0x79
	opROFF byte = 0x7A
	// 0x7B reserved
	opRUTG byte = 0x7C
	opRDTG byte = 0x7D
	opSANGW byte = 0x7E
	opAA    byte = 0x7F

	opFLIPPT    byte = 0x80
	opFLIPRGON  byte = 0x81
	opFLIPRGOFF byte = 0x82
	// 0x83, 0x84 reserved

	opSCANCTRL byte = 0x85
	opSDPVTL0  byte = 0x86
	opSDPVTL1  byte = 0x87
	opGETINFO  byte = 0x88
	opIDEF     byte = 0x89
	opROLL     byte = 0x8A
	opMAX      byte = 0x8B
	opMIN      byte = 0x8C
	opSCANTYPE byte = 0x8D
	opINSTCTRL byte = 0x8E

	opPUSHB000 byte = 0xB0
	opPUSHW000 byte = 0xB8

	opMDRPBase byte = 0xC0
	opMIRPBase byte = 0xE0
)

// mdrpMirpFlags decodes the low 5 bits shared by MDRP and MIRP opcodes
// (spec.md 4.5 MDRP/MIRP). The bit meanings are identical for both
// families; only how cvtDist/orgDist are computed differs.
type mdrpMirpFlags struct {
	setRP0       bool
	minimumDist  bool
	round        bool
	distanceType int // 0: use current roundState, 1-3: ToGrid/ToHalfGrid/ToDoubleGrid override
}

func decodeMdrpMirpFlags(opcode byte) mdrpMirpFlags {
	bits := opcode & 0x1F
	return mdrpMirpFlags{
		setRP0:       bits&0x10 != 0,
		minimumDist:  bits&0x08 != 0,
		round:        bits&0x04 != 0,
		distanceType: int(bits & 0x03),
	}
}
