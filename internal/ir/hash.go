package ir

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Domain prefixes for content-addressed identity.
// Version suffix enables future algorithm migration.
const (
	DomainRelation = "relcheck/relation/v1"
	DomainResult   = "relcheck/result/v1"
)

// hashWithDomain computes SHA-256 hash with domain separation.
// Format: SHA256(domain + 0x00 + data)
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// relationDoc is the hashed form of a relation: elements in order plus the
// row-major list of pairs.
type relationDoc struct {
	Elements []Element `json:"elements"`
	Pairs    []Pair    `json:"pairs"`
}

// RelationHash identifies a relation by its elements and pairs.
// Two sources that parse to the same relation share a hash.
func RelationHash(rel Relation) (string, error) {
	elements := rel.Elements
	if elements == nil {
		elements = []Element{}
	}
	canonical, err := MarshalCanonical(relationDoc{Elements: elements, Pairs: rel.Pairs()})
	if err != nil {
		return "", fmt.Errorf("RelationHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRelation, canonical), nil
}

// ResultHash is the fingerprint of an analysis result.
func ResultHash(res Result) (string, error) {
	canonical, err := MarshalCanonical(res)
	if err != nil {
		return "", fmt.Errorf("ResultHash: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainResult, canonical), nil
}

// MustRelationHash is like RelationHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustRelationHash(rel Relation) string {
	h, err := RelationHash(rel)
	if err != nil {
		panic(err)
	}
	return h
}

// MustResultHash is like ResultHash but panics on error.
// Use only in tests or when inputs are known to be valid.
func MustResultHash(res Result) string {
	h, err := ResultHash(res)
	if err != nil {
		panic(err)
	}
	return h
}
