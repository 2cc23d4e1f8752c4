package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

type token struct {
	Name     string
	Code     string
	Decimals int
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "token", "token_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of token objects
	toks, err := convertDataToTokens(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the token objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "token", "token_data.tmpl"), toks)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("token_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	return reader.ReadAll()
}

func convertDataToTokens(data [][]string) ([]token, error) {
	// The unknown token must come first, it is the zero value of Token
	less := func(i, j int) bool {
		a := data[i][1]
		b := data[j][1]
		switch {
		case a == "XXX":
			return true
		case b == "XXX":
			return false
		}
		return a < b
	}
	sort.Slice(data, less)

	toks := []token{}
	for _, rec := range data {
		dec, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("token %v: %w", rec[1], err)
		}
		if dec < 0 || dec > 127 {
			return nil, fmt.Errorf("token %v: decimals %v out of range", rec[1], dec)
		}
		toks = append(toks, token{
			Name:     rec[0],
			Code:     rec[1],
			Decimals: dec,
		})
	}
	if len(toks) > 256 {
		return nil, fmt.Errorf("too many tokens: %v", len(toks))
	}
	return toks, nil
}

func generateGoCode(filename string, toks []token) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	err = tmpl.Execute(&output, toks)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	return format.Source(output.Bytes())
}

func writeToFile(filename string, content []byte) error {
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
