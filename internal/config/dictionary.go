package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Dictionary is the fixed message table surfaced to clients, plus the
// reserved username list. Loaded from data/dict.yml.
type Dictionary struct {
	MissingFields     string   `yaml:"missing_fields"`
	IllegalEmail      string   `yaml:"illegal_email"`
	AccountCreated    string   `yaml:"account_created"`
	ReservedUsernames []string `yaml:"reserved_usernames"`

	Status struct {
		Success string `yaml:"success"`
		Failure string `yaml:"failure"`
	} `yaml:"status"`

	Error struct {
		Internal      string `yaml:"internal"`
		MissingFields string `yaml:"missing_fields"`

		Username struct {
			TooLong  string `yaml:"too_long"`
			TooShort string `yaml:"too_short"`
			Illegal  string `yaml:"illegal"`
			Reserved string `yaml:"reserved"`
			Occupied string `yaml:"occupied"`
		} `yaml:"username"`

		Login struct {
			MissingFields      string `yaml:"missing_fields"`
			InvalidCredentials string `yaml:"invalid_credentials"`
		} `yaml:"login"`

		User struct {
			NotFound string `yaml:"not_found"`
		} `yaml:"user"`
	} `yaml:"error"`
}

type dictFile struct {
	Dictionary Dictionary `yaml:"dictionary"`
}

// DefaultDictionary returns the built-in message table, used when no
// dict.yml is present (tests, bare deployments).
func DefaultDictionary() Dictionary {
	var d Dictionary
	d.MissingFields = "Missing required field:"
	d.IllegalEmail = "That email is already in use"
	d.AccountCreated = "Account created"
	d.ReservedUsernames = []string{
		"admin", "administrator", "moderator", "root", "support", "system",
	}
	d.Status.Success = "Success"
	d.Status.Failure = "Failure"
	d.Error.Internal = "Something went wrong, try again later"
	d.Error.MissingFields = "Missing required fields"
	d.Error.Username.TooLong = "That username is too long"
	d.Error.Username.TooShort = "That username is too short"
	d.Error.Username.Illegal = "That username contains illegal characters"
	d.Error.Username.Reserved = "That username is reserved"
	d.Error.Username.Occupied = "That username is already taken"
	d.Error.Login.MissingFields = "Email and password are required"
	d.Error.Login.InvalidCredentials = "Invalid email or password"
	d.Error.User.NotFound = "User not found"
	return d
}

// LoadDictionary parses a dict.yml file. A missing file falls back to the
// built-in defaults; a malformed file is an error.
func LoadDictionary(path string) (Dictionary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultDictionary(), nil
		}
		return Dictionary{}, fmt.Errorf("read dictionary: %w", err)
	}
	var f dictFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Dictionary{}, fmt.Errorf("parse dictionary: %w", err)
	}
	return f.Dictionary, nil
}
