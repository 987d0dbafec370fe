// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package remap resolves admonition type tokens to directive container
// types. An unrecognized token is not an error; it resolves to the table's
// fallback type.
// Implements: prd002-remap (R1, R2).
package remap

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// DefaultFallback is the destination type for tokens no table entry covers.
const DefaultFallback = "note"

// Table maps lowercase admonition types to directive types.
type Table struct {
	types    map[string]string
	fallback string
}

// New builds a Table from a type mapping and a fallback destination. Keys
// are lowercased; an empty fallback becomes DefaultFallback.
func New(types map[string]string, fallback string) Table {
	m := make(map[string]string, len(types))
	for src, dest := range types {
		m[strings.ToLower(src)] = dest
	}
	if fallback == "" {
		fallback = DefaultFallback
	}
	return Table{types: m, fallback: fallback}
}

// Resolve returns the destination type for src, lowercasing it for lookup.
// A miss resolves to the fallback type.
func (t Table) Resolve(src string) string {
	if dest, ok := t.types[strings.ToLower(src)]; ok {
		return dest
	}
	return t.fallback
}

// Fallback returns the table's destination type for unmapped tokens.
func (t Table) Fallback() string {
	return t.fallback
}

// Default returns the built-in MkDocs-to-Docusaurus mapping. The source
// dialect's dozen-plus semantic types collapse onto the destination's five
// containers.
func Default() Table {
	return New(map[string]string{
		"note":     "note",
		"abstract": "note",
		"summary":  "note",
		"tldr":     "note",
		"question": "note",
		"help":     "note",
		"faq":      "note",
		"example":  "note",
		"quote":    "note",
		"cite":     "note",

		"info": "info",
		"todo": "info",

		"tip":       "tip",
		"hint":      "tip",
		"important": "tip",
		"success":   "tip",
		"check":     "tip",
		"done":      "tip",

		"warning":   "warning",
		"caution":   "warning",
		"attention": "warning",

		"danger":  "danger",
		"error":   "danger",
		"bug":     "danger",
		"failure": "danger",
		"fail":    "danger",
		"missing": "danger",
	}, DefaultFallback)
}

// tableFile is the on-disk YAML form of a custom table.
type tableFile struct {
	Default string            `yaml:"default"`
	Types   map[string]string `yaml:"types"`
}

// Load reads a custom remap table from a YAML file with a `types` mapping
// and an optional `default` destination.
func Load(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Table{}, fmt.Errorf("reading remap table %s: %w", path, err)
	}

	var tf tableFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return Table{}, fmt.Errorf("parsing remap table %s: %w", path, err)
	}
	if len(tf.Types) == 0 {
		return Table{}, fmt.Errorf("remap table %s defines no types", path)
	}

	return New(tf.Types, tf.Default), nil
}
