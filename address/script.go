package address

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"

	"github.com/umbra-project/go-umbra/chaincfg"
)

// ScriptClass is an enumeration of the standard output script templates.
type ScriptClass byte

const (
	NonStandardTy ScriptClass = iota
	PubKeyHashTy
	ScriptHashTy
	PubKeyHash256Ty
	ScriptHash256Ty
	WitnessV0PubKeyHashTy
	WitnessV0ScriptHashTy
	NullDataTy
)

var scriptClassNames = map[ScriptClass]string{
	NonStandardTy:         "nonstandard",
	PubKeyHashTy:          "pubkeyhash",
	ScriptHashTy:          "scripthash",
	PubKeyHash256Ty:       "pubkeyhash256",
	ScriptHash256Ty:       "scripthash256",
	WitnessV0PubKeyHashTy: "witness_v0_keyhash",
	WitnessV0ScriptHashTy: "witness_v0_scripthash",
	NullDataTy:            "nulldata",
}

// String returns the ScriptClass in human readable form.
func (c ScriptClass) String() string {
	if name, ok := scriptClassNames[c]; ok {
		return name
	}
	return fmt.Sprintf("invalid script class %d", byte(c))
}

// GetScriptType classifies an output script by direct byte pattern. The 256
// bit forms replace the ripemd160 step with a second sha256, everything else
// follows the usual templates.
func GetScriptType(script []byte) ScriptClass {
	switch {
	case len(script) == 25 &&
		script[0] == txscript.OP_DUP && script[1] == txscript.OP_HASH160 &&
		script[2] == txscript.OP_DATA_20 &&
		script[23] == txscript.OP_EQUALVERIFY && script[24] == txscript.OP_CHECKSIG:
		return PubKeyHashTy

	case len(script) == 37 &&
		script[0] == txscript.OP_DUP && script[1] == txscript.OP_SHA256 &&
		script[2] == txscript.OP_DATA_32 &&
		script[35] == txscript.OP_EQUALVERIFY && script[36] == txscript.OP_CHECKSIG:
		return PubKeyHash256Ty

	case len(script) == 23 &&
		script[0] == txscript.OP_HASH160 && script[1] == txscript.OP_DATA_20 &&
		script[22] == txscript.OP_EQUAL:
		return ScriptHashTy

	case len(script) == 35 &&
		script[0] == txscript.OP_SHA256 && script[1] == txscript.OP_DATA_32 &&
		script[34] == txscript.OP_EQUAL:
		return ScriptHash256Ty

	case len(script) == 22 &&
		script[0] == txscript.OP_0 && script[1] == txscript.OP_DATA_20:
		return WitnessV0PubKeyHashTy

	case len(script) == 34 &&
		script[0] == txscript.OP_0 && script[1] == txscript.OP_DATA_32:
		return WitnessV0ScriptHashTy

	case len(script) >= 1 && script[0] == txscript.OP_RETURN:
		return NullDataTy
	}
	return NonStandardTy
}

// PayToPubKeyHashScript returns the output script paying to a 160 bit key
// hash.
func PayToPubKeyHashScript(keyHash []byte) ([]byte, error) {
	if len(keyHash) != 20 {
		return nil, ErrPayloadSize
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).AddOp(txscript.OP_HASH160).
		AddData(keyHash).
		AddOp(txscript.OP_EQUALVERIFY).AddOp(txscript.OP_CHECKSIG).
		Script()
}

// PayToScriptHashScript returns the output script paying to a 160 bit script
// hash.
func PayToScriptHashScript(scriptHash []byte) ([]byte, error) {
	if len(scriptHash) != 20 {
		return nil, ErrPayloadSize
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_HASH160).AddData(scriptHash).AddOp(txscript.OP_EQUAL).
		Script()
}

// PayToPubKeyHash256Script returns the output script paying to a 256 bit key
// hash.
func PayToPubKeyHash256Script(keyHash []byte) ([]byte, error) {
	if len(keyHash) != 32 {
		return nil, ErrPayloadSize
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_DUP).AddOp(txscript.OP_SHA256).
		AddData(keyHash).
		AddOp(txscript.OP_EQUALVERIFY).AddOp(txscript.OP_CHECKSIG).
		Script()
}

// PayToScriptHash256Script returns the output script paying to a 256 bit
// script hash.
func PayToScriptHash256Script(scriptHash []byte) ([]byte, error) {
	if len(scriptHash) != 32 {
		return nil, ErrPayloadSize
	}
	return txscript.NewScriptBuilder().
		AddOp(txscript.OP_SHA256).AddData(scriptHash).AddOp(txscript.OP_EQUAL).
		Script()
}

// WitnessProgramScript returns the output script of a native witness
// program.
func WitnessProgramScript(version byte, program []byte) ([]byte, error) {
	if err := checkWitnessProgram(version, program); err != nil {
		return nil, err
	}
	op := byte(txscript.OP_0)
	if version > 0 {
		op = txscript.OP_1 + version - 1
	}
	return txscript.NewScriptBuilder().AddOp(op).AddData(program).Script()
}

// ToOutputScript resolves any supported address form into the output script
// it pays to.
func ToOutputScript(addr string, net *chaincfg.Params) ([]byte, error) {
	if decoded, tag, err := FromBase58(addr, net); err == nil {
		return outputScriptForTag(tag, decoded.Data)
	}
	if net.IsBech32Prefix([]byte(addr)) {
		decoded, tag, err := FromBech32(addr, net)
		if err != nil {
			return nil, err
		}
		return outputScriptForTag(tag, decoded.Data)
	}

	version, program, err := DecodeSegwit(addr, net)
	if err != nil {
		return nil, err
	}
	return WitnessProgramScript(version, program)
}

func outputScriptForTag(tag chaincfg.KeyPrefix, data []byte) ([]byte, error) {
	switch tag {
	case chaincfg.PubKeyAddress, chaincfg.StakeOnlyPubKeyAddress:
		return PayToPubKeyHashScript(data)
	case chaincfg.ScriptAddress:
		return PayToScriptHashScript(data)
	case chaincfg.PubKeyAddress256:
		return PayToPubKeyHash256Script(data)
	case chaincfg.ScriptAddress256:
		return PayToScriptHash256Script(data)
	}
	return nil, fmt.Errorf("no output script for %s addresses", tag)
}
