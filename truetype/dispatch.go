// Copyright 2010 The Freetype-Go Authors. All rights reserved.
// Use of this source code is governed by your choice of either the
// FreeType License or the GNU General Public License version 2 (or
// any later version), both of which can be found in the LICENSE file.

package truetype

// dispatchSimple handles every opcode step doesn't special-case for its
// variable length or shared flag layout (PUSHB/PUSHW/NPUSHB/NPUSHW,
// MDRP, MIRP). It is a flat switch rather than the [256]handler table
// spec.md 9 suggests, because roughly a third of these handlers need an
// extra argument (axis, perpendicular-ness, which reference point) that
// a uniform `func(*Engine) error` signature can't carry without an
// allocation per opcode; a switch keeps that binding static.
func (e *Engine) dispatchSimple(op byte) error {
	switch op {
	case opSVTCA0:
		return e.execSVTCA(0)
	case opSVTCA1:
		return e.execSVTCA(1)
	case opSPVTCA0:
		return e.execSPVTCA(0)
	case opSPVTCA1:
		return e.execSPVTCA(1)
	case opSFVTCA0:
		return e.execSFVTCA(0)
	case opSFVTCA1:
		return e.execSFVTCA(1)
	case opSPVTL0:
		return e.execSPVTL(false)
	case opSPVTL1:
		return e.execSPVTL(true)
	case opSFVTL0:
		return e.execSFVTL(false)
	case opSFVTL1:
		return e.execSFVTL(true)
	case opSPVFS:
		return e.execSPVFS()
	case opSFVFS:
		return e.execSFVFS()
	case opGPV:
		return e.execGPV()
	case opGFV:
		return e.execGFV()
	case opSFVTPV:
		return e.execSFVTPV()
	case opISECT:
		return e.execISECT()

	case opSRP0:
		return e.execSRP(0)
	case opSRP1:
		return e.execSRP(1)
	case opSRP2:
		return e.execSRP(2)
	case opSZP0:
		return e.execSZP(0)
	case opSZP1:
		return e.execSZP(1)
	case opSZP2:
		return e.execSZP(2)
	case opSZPS:
		return e.execSZPS()
	case opSLOOP:
		return e.execSLOOP()
	case opRTG:
		return e.execRTG()
	case opRTHG:
		return e.execRTHG()
	case opSMD:
		return e.execSMD()
	case opELSE:
		return e.execELSE()
	case opJMPR:
		return e.execJMPR()
	case opSCVTCI:
		return e.execSCVTCI()
	case opSSWCI:
		return e.execSSWCI()
	case opSSW:
		return e.execSSW()

	case opDUP:
		return e.execDUP()
	case opPOP:
		return e.execPOP()
	case opCLEAR:
		return e.execCLEAR()
	case opSWAP:
		return e.execSWAP()
	case opDEPTH:
		return e.execDEPTH()
	case opCINDEX:
		return e.execCINDEX()
	case opMINDEX:
		return e.execMINDEX()
	case opALIGNPTS:
		return e.execALIGNPTS()
	case opUTP:
		return e.execUTP()

	case opLOOPCALL:
		return e.execLOOPCALL()
	case opCALL:
		return e.execCALL()
	case opFDEF:
		return e.execFDEF()
	case opENDF:
		return e.execENDF()
	case opMDAP0:
		return e.execMDAP(false)
	case opMDAP1:
		return e.execMDAP(true)
	case opIUP0:
		return e.execIUP(false)
	case opIUP1:
		return e.execIUP(true)
	case opSHP0:
		return e.execSHP(true)
	case opSHP1:
		return e.execSHP(false)
	case opSHC0:
		return e.execSHC(true)
	case opSHC1:
		return e.execSHC(false)
	case opSHZ0:
		return e.execSHZ(true)
	case opSHZ1:
		return e.execSHZ(false)
	case opSHPIX:
		return e.execSHPIX()
	case opIP:
		return e.execIP()
	case opMSIRP0:
		return e.execMSIRP(false)
	case opMSIRP1:
		return e.execMSIRP(true)
	case opALIGNRP:
		return e.execALIGNRP()
	case opRTDG:
		return e.execRTDG()
	case opMIAP0:
		return e.execMIAP(false)
	case opMIAP1:
		return e.execMIAP(true)

	case opWS:
		return e.execWS()
	case opRS:
		return e.execRS()
	case opWCVTP:
		return e.execWCVTP()
	case opRCVT:
		return e.execRCVT()
	case opGC0:
		return e.execGC(false)
	case opGC1:
		return e.execGC(true)
	case opSCFS:
		return e.execSCFS()
	case opMD0:
		return e.execMD(false)
	case opMD1:
		return e.execMD(true)
	case opMPPEM:
		return e.execMPPEM()
	case opMPS:
		return e.execMPS()

	case opFLIPON:
		return e.execFLIPON()
	case opFLIPOFF:
		return e.execFLIPOFF()
	case opDEBUG:
		return e.execDEBUG()

	case opLT:
		return e.execLT()
	case opLTEQ:
		return e.execLTEQ()
	case opGT:
		return e.execGT()
	case opGTEQ:
		return e.execGTEQ()
	case opEQ:
		return e.execEQ()
	case opNEQ:
		return e.execNEQ()
	case opODD:
		return e.execODD()
	case opEVEN:
		return e.execEVEN()
	case opIF:
		return e.execIF()
	case opEIF:
		return e.execEIF()
	case opAND:
		return e.execAND()
	case opOR:
		return e.execOR()
	case opNOT:
		return e.execNOT()

	case opDELTAP1:
		return e.execDELTAP(0)
	case opSDB:
		return e.execSDB()
	case opSDS:
		return e.execSDS()

	case opADD:
		return e.execADD()
	case opSUB:
		return e.execSUB()
	case opDIV:
		return e.execDIV()
	case opMUL:
		return e.execMUL()
	case opABS:
		return e.execABS()
	case opNEG:
		return e.execNEG()
	case opFLOOR:
		return e.execFLOOR()
	case opCEILING:
		return e.execCEILING()

	case opROUND00, opROUND01, opROUND10, opROUND11:
		return e.execROUND()
	case opNROUND00, opNROUND01, opNROUND10, opNROUND11:
		return e.execNROUND()

	case opWCVTF:
		return e.execWCVTF()
	case opDELTAP2:
		return e.execDELTAP(1)
	case opDELTAP3:
		return e.execDELTAP(2)
	case opDELTAC1:
		return e.execDELTAC(0)
	case opDELTAC2:
		return e.execDELTAC(1)
	case opDELTAC3:
		return e.execDELTAC(2)

	case opSROUND:
		return e.execSROUND()
	case opS45ROUND:
		return e.execS45ROUND()

	case opJROT:
		return e.execJROT()
	case opJROF:
		return e.execJROF()
	case opROFF:
		return e.execROFF()
	case opRUTG:
		return e.execRUTG()
	case opRDTG:
		return e.execRDTG()
	case opSANGW:
		return e.execSANGW()
	case opAA:
		return e.execAA()

	case opFLIPPT:
		return e.execFLIPPT()
	case opFLIPRGON:
		return e.execFLIPRGON()
	case opFLIPRGOFF:
		return e.execFLIPRGOFF()

	case opSCANCTRL:
		return e.execSCANCTRL()
	case opSDPVTL0:
		return e.execSDPVTL(false)
	case opSDPVTL1:
		return e.execSDPVTL(true)
	case opGETINFO:
		return e.execGETINFO()
	case opIDEF:
		return e.execIDEF()
	case opROLL:
		return e.execROLL()
	case opMAX:
		return e.execMAX()
	case opMIN:
		return e.execMIN()
	case opSCANTYPE:
		return e.execSCANTYPE()
	case opINSTCTRL:
		return e.execINSTCTRL()

	default:
		return e.dispatchUserDefined(op)
	}
}

// dispatchUserDefined routes an opcode with no built-in meaning to an
// IDEF-registered handler, if the font defined one (spec.md 4.8).
func (e *Engine) dispatchUserDefined(op byte) error {
	def, ok := e.idefs[op]
	if !ok || !def.Active {
		return e.fail(ErrUnknownOpcode)
	}
	return e.callFunction(def, 1)
}
