package tx

import (
	"encoding/binary"
	"fmt"

	"github.com/kohla-sky/sample-program/internal/common"
)

// InstructionType is the leading tag byte of an encoded instruction.
type InstructionType uint8

const (
	TypeInitialize        InstructionType = 0
	TypeCreateUserAccount InstructionType = 1
	TypeTransferWithFee   InstructionType = 2
)

func (t InstructionType) String() string {
	switch t {
	case TypeInitialize:
		return "Initialize"
	case TypeCreateUserAccount:
		return "CreateUserAccount"
	case TypeTransferWithFee:
		return "TransferWithFee"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(t))
	}
}

// Instruction is a decoded command together with its typed arguments.
//
// Wire form: tag byte followed by the little-endian arguments.
//
//	Initialize         0 ‖ initial_amount u64
//	CreateUserAccount  1 ‖ initial_balance u64
//	TransferWithFee    2 ‖ amount u64 ‖ fee_basis_points u16
type Instruction interface {
	Type() InstructionType
	MarshalBinary() ([]byte, error)
}

// Initialize creates the program state with a supply of InitialAmount whole
// tokens.
type Initialize struct {
	InitialAmount uint64
}

func (i *Initialize) Type() InstructionType { return TypeInitialize }

func (i *Initialize) MarshalBinary() ([]byte, error) {
	b := []byte{byte(TypeInitialize)}
	return binary.LittleEndian.AppendUint64(b, i.InitialAmount), nil
}

// CreateUserAccount creates a user balance record.
type CreateUserAccount struct {
	InitialBalance uint64
}

func (c *CreateUserAccount) Type() InstructionType { return TypeCreateUserAccount }

func (c *CreateUserAccount) MarshalBinary() ([]byte, error) {
	b := []byte{byte(TypeCreateUserAccount)}
	return binary.LittleEndian.AppendUint64(b, c.InitialBalance), nil
}

// TransferWithFee moves Amount between user accounts and burns a fee of
// FeeBasisPoints of Amount from the sender.
type TransferWithFee struct {
	Amount         uint64
	FeeBasisPoints uint16
}

func (t *TransferWithFee) Type() InstructionType { return TypeTransferWithFee }

func (t *TransferWithFee) MarshalBinary() ([]byte, error) {
	b := []byte{byte(TypeTransferWithFee)}
	b = binary.LittleEndian.AppendUint64(b, t.Amount)
	return binary.LittleEndian.AppendUint16(b, t.FeeBasisPoints), nil
}

// DecodeInstruction parses an encoded instruction. The buffer must hold
// exactly one instruction.
func DecodeInstruction(buf []byte) (Instruction, error) {
	if len(buf) == 0 {
		return nil, common.ErrMalformedInstruction
	}
	return decodeArgs(InstructionType(buf[0]), buf[1:])
}

func decodeArgs(t InstructionType, args []byte) (Instruction, error) {
	switch t {
	case TypeInitialize:
		if len(args) != 8 {
			return nil, common.ErrMalformedInstruction
		}
		return &Initialize{InitialAmount: binary.LittleEndian.Uint64(args)}, nil
	case TypeCreateUserAccount:
		if len(args) != 8 {
			return nil, common.ErrMalformedInstruction
		}
		return &CreateUserAccount{InitialBalance: binary.LittleEndian.Uint64(args)}, nil
	case TypeTransferWithFee:
		if len(args) != 10 {
			return nil, common.ErrMalformedInstruction
		}
		return &TransferWithFee{
			Amount:         binary.LittleEndian.Uint64(args),
			FeeBasisPoints: binary.LittleEndian.Uint16(args[8:]),
		}, nil
	default:
		return nil, common.NewCustom(common.CodeUnknownInstruction, uint64(t), 0)
	}
}
