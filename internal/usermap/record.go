package usermap

import (
	"time"

	"github.com/dmitrijs2005/usermap/internal/cryptox"
	"github.com/google/uuid"
)

// Record is a credential entry owned by a Table.
//
// The username is fixed at creation. The salt and digest always change
// together: the digest is the hash of the current secret and the current salt.
type Record struct {
	id        string
	userName  string
	salt      string
	digest    []byte
	createdAt time.Time
	updatedAt time.Time
}

func newRecord(userName, secret string, salts *SaltGenerator) *Record {
	now := time.Now()
	salt := salts.Generate()
	return &Record{
		id:        uuid.NewString(),
		userName:  userName,
		salt:      salt,
		digest:    cryptox.Digest(secret, salt),
		createdAt: now,
		updatedAt: now,
	}
}

func (r *Record) ID() string           { return r.id }
func (r *Record) UserName() string     { return r.userName }
func (r *Record) Salt() string         { return r.salt }
func (r *Record) CreatedAt() time.Time { return r.createdAt }
func (r *Record) UpdatedAt() time.Time { return r.updatedAt }

// Digest returns a copy of the stored secret digest.
func (r *Record) Digest() []byte {
	d := make([]byte, len(r.digest))
	copy(d, r.digest)
	return d
}

// Verify reports whether candidate is the record's current secret.
func (r *Record) Verify(candidate string) bool {
	return cryptox.Equal(r.digest, cryptox.Digest(candidate, r.salt))
}

// changeSecret replaces salt and digest together. The caller must have
// verified the current secret.
func (r *Record) changeSecret(newSecret string, salts *SaltGenerator) {
	salt := salts.Generate()
	r.digest = cryptox.Digest(newSecret, salt)
	r.salt = salt
	r.updatedAt = time.Now()
}

// String is the display form. It never includes the salt or digest.
func (r *Record) String() string {
	return "UserRecord: " + r.userName
}
