package entity

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// idLen es la longitud en caracteres hex de un identificador (12 bytes, formato ObjectID).
const idLen = 24

// ID identificador canónico de asesores, clientes y registros.
// Siempre contiene 24 caracteres hex en minúsculas, o está vacío (IsZero).
// Toda comparación de identidades pasa por ParseID.
type ID struct {
	hex string
}

// ParseID normaliza s (espacios, mayúsculas, comillas de JSON extendido y envoltorio
// ObjectId("...")) y valida que sea un identificador de 24 hex.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "ObjectId(") && strings.HasSuffix(s, ")") {
		s = strings.TrimSuffix(strings.TrimPrefix(s, "ObjectId("), ")")
	}
	s = strings.ToLower(strings.Trim(s, `"'`))
	if len(s) != idLen {
		return ID{}, fmt.Errorf("id %q: longitud %d, se esperaban %d", s, len(s), idLen)
	}
	if _, err := hex.DecodeString(s); err != nil {
		return ID{}, fmt.Errorf("id %q: no es hexadecimal", s)
	}
	return ID{hex: s}, nil
}

// MustParseID como ParseID pero hace panic; solo para constantes y tests.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// NewID genera un identificador con el layout de ObjectID: 4 bytes de segundos Unix + 8 aleatorios.
func NewID() ID {
	var b [12]byte
	binary.BigEndian.PutUint32(b[:4], uint32(time.Now().Unix()))
	if _, err := rand.Read(b[4:]); err != nil {
		panic(fmt.Sprintf("entity: generar id: %v", err))
	}
	return ID{hex: hex.EncodeToString(b[:])}
}

// String devuelve la forma canónica.
func (id ID) String() string { return id.hex }

// IsZero indica si el identificador no fue asignado.
func (id ID) IsZero() bool { return id.hex == "" }

// Bytes devuelve los 12 bytes del identificador (nil si IsZero).
func (id ID) Bytes() []byte {
	if id.IsZero() {
		return nil
	}
	b, _ := hex.DecodeString(id.hex)
	return b
}

// MarshalJSON serializa como string.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.hex)
}

// UnmarshalJSON acepta un string canónico o vacío.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*id = ID{}
		return nil
	}
	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// Scope par (cliente, asesor) que acota todas las lecturas por servicio.
type Scope struct {
	ClientID  ID
	AdvisorID ID
}
