// Package chart holds the chart of accounts used to resolve posting targets.
package chart

import (
	"fmt"
	"os"
	"sort"

	"github.com/SscSPs/roundup_ledger/internal/core/domain"
	"gopkg.in/yaml.v3"
)

// Chart is an immutable, code-indexed set of GL accounts.
type Chart struct {
	byCode map[string]domain.Account
	order  []string
}

// NewChart indexes the given accounts by code. Duplicate codes are rejected.
func NewChart(accounts []domain.Account) (*Chart, error) {
	c := &Chart{
		byCode: make(map[string]domain.Account, len(accounts)),
		order:  make([]string, 0, len(accounts)),
	}
	for _, a := range accounts {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.byCode[a.Code]; exists {
			return nil, fmt.Errorf("duplicate account code %s", a.Code)
		}
		c.byCode[a.Code] = a
		c.order = append(c.order, a.Code)
	}
	return c, nil
}

// Default returns the chart built from DefaultAccounts.
func Default() *Chart {
	c, err := NewChart(DefaultAccounts())
	if err != nil {
		panic(fmt.Sprintf("default chart of accounts is invalid: %v", err))
	}
	return c
}

// Lookup returns the account for code, if any.
func (c *Chart) Lookup(code string) (domain.Account, bool) {
	if c == nil {
		return domain.Account{}, false
	}
	a, ok := c.byCode[code]
	return a, ok
}

// AccountName resolves a code to its display name, falling back to "Unknown Account".
func (c *Chart) AccountName(code string) string {
	if a, ok := c.Lookup(code); ok {
		return a.Name
	}
	return domain.UnknownAccountName
}

// Accounts returns the accounts in seed order.
func (c *Chart) Accounts() []domain.Account {
	out := make([]domain.Account, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.byCode[code])
	}
	return out
}

// Len returns the number of accounts in the chart.
func (c *Chart) Len() int {
	return len(c.order)
}

type seedFile struct {
	Accounts []seedAccount `yaml:"accounts"`
}

type seedAccount struct {
	Code          string `yaml:"code"`
	Name          string `yaml:"name"`
	Type          string `yaml:"type"`
	NormalBalance string `yaml:"normal_balance"`
	Description   string `yaml:"description"`
	Inactive      bool   `yaml:"inactive"`
}

// LoadYAML reads a seed chart from a YAML file. An omitted normal_balance falls back to
// the conventional side for the account type.
func LoadYAML(path string) (*Chart, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart seed file %s: %w", path, err)
	}
	return ParseYAML(raw)
}

// ParseYAML parses a seed chart document.
func ParseYAML(raw []byte) (*Chart, error) {
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing chart seed: %w", err)
	}
	if len(doc.Accounts) == 0 {
		return nil, fmt.Errorf("chart seed contains no accounts")
	}

	accounts := make([]domain.Account, 0, len(doc.Accounts))
	for _, sa := range doc.Accounts {
		t, err := domain.ParseAccountType(sa.Type)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", sa.Code, err)
		}
		nb := domain.ConventionalNormalBalance(t)
		if sa.NormalBalance != "" {
			if nb, err = domain.ParseNormalBalance(sa.NormalBalance); err != nil {
				return nil, fmt.Errorf("account %s: %w", sa.Code, err)
			}
		}
		accounts = append(accounts, domain.Account{
			Code:          sa.Code,
			Name:          sa.Name,
			Type:          t,
			NormalBalance: nb,
			Description:   sa.Description,
			IsActive:      !sa.Inactive,
			Version:       1,
		})
	}
	return NewChart(accounts)
}

// SortByCode orders accounts by code in place.
func SortByCode(accounts []domain.Account) {
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Code < accounts[j].Code })
}
