/*
Copyright 2024 Blnk Finance Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package console implements the interactive menu driving a gicbank.Bank
// from a line-oriented reader.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	gicbank "github.com/blnkfinance/gicbank"
	"github.com/blnkfinance/gicbank/internal/apierror"
	"github.com/blnkfinance/gicbank/internal/dateutil"
)

const (
	transactionPrompt = "Please enter transaction details in <Date> <Account> <Type> <Amount> format (or enter blank to go back to main menu): "
	interestPrompt    = "Please enter interest rule details in <Date> <RuleId> <Rate> format (or enter blank to go back to main menu): "
	statementPrompt   = "Please enter account and month to generate the statement <Account> <Year><Month> (or enter blank to go back to main menu): "
	invalidChoice     = "Invalid choice. Please try again."

	// maxHintDistance bounds how far a mistyped menu word may be from a
	// known one before no hint is offered.
	maxHintDistance = 2
)

type choice string

const (
	choiceTransaction choice = "T"
	choiceInterest    choice = "I"
	choicePrint       choice = "P"
	choiceQuit        choice = "Q"
)

// menuWords are the long forms accepted in place of the single letters.
var menuWords = map[string]choice{
	"TRANSACTION":  choiceTransaction,
	"TRANSACTIONS": choiceTransaction,
	"INTEREST":     choiceInterest,
	"PRINT":        choicePrint,
	"STATEMENT":    choicePrint,
	"QUIT":         choiceQuit,
	"EXIT":         choiceQuit,
}

type Console struct {
	bank     *gicbank.Bank
	in       *bufio.Scanner
	out      io.Writer
	bankName string
}

func New(bank *gicbank.Bank, in io.Reader, out io.Writer, bankName string) *Console {
	return &Console{
		bank:     bank,
		in:       bufio.NewScanner(in),
		out:      out,
		bankName: bankName,
	}
}

// Run loops over the main menu until the user quits or input is exhausted.
func (c *Console) Run() error {
	for {
		c.printMenu()
		line, ok := c.readLine()
		if !ok {
			c.quit()
			return c.in.Err()
		}

		selected, known := parseChoice(line)
		logrus.WithField("choice", line).Debug("menu choice")

		switch {
		case !known:
			c.println(invalidChoice)
			if hint := suggest(line); hint != "" {
				c.println(fmt.Sprintf("Did you mean %q?", hint))
			}
		case selected == choiceTransaction:
			c.inputTransaction()
		case selected == choiceInterest:
			c.defineInterestRule()
		case selected == choicePrint:
			c.printStatement()
		case selected == choiceQuit:
			c.quit()
			return nil
		}
	}
}

func (c *Console) printMenu() {
	c.println(fmt.Sprintf(`
Welcome to %s! What would you like to do?
[T] Input transactions 
[I] Define interest rules
[P] Print statement
[Q] Quit
>`, c.bankName))
}

func (c *Console) inputTransaction() {
	details, ok := c.prompt(transactionPrompt)
	if !ok {
		return
	}

	txn, err := c.bank.SubmitTransaction(details)
	if err != nil {
		c.printError(err)
		return
	}
	c.println(gicbank.FormatReceipt(txn))
}

func (c *Console) defineInterestRule() {
	details, ok := c.prompt(interestPrompt)
	if !ok {
		return
	}

	if err := c.bank.DefineInterestRule(details); err != nil {
		c.printError(err)
		return
	}
	c.println(c.bank.RulesListing())
}

func (c *Console) printStatement() {
	details, ok := c.prompt(statementPrompt)
	if !ok {
		return
	}

	fields := strings.Split(dateutil.NormalizeWhitespace(details), " ")
	accountID, month := fields[0], ""
	if len(fields) > 1 {
		month = fields[1]
	}

	statement, err := c.bank.PrintStatement(accountID, month)
	if err != nil {
		c.printError(err)
		return
	}
	c.println(statement)
}

func (c *Console) quit() {
	c.println(fmt.Sprintf("Thank you for banking with %s.", c.bankName))
	c.println("Have a nice day!")
}

// prompt writes text and reads one line. It reports false for blank input,
// which returns the user to the main menu.
func (c *Console) prompt(text string) (string, bool) {
	fmt.Fprint(c.out, text)
	line, ok := c.readLine()
	if !ok || strings.TrimSpace(line) == "" {
		return "", false
	}
	return line, true
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *Console) printError(err error) {
	c.println(apierror.Message(err))
}

func (c *Console) println(text string) {
	fmt.Fprintln(c.out, text)
}

func parseChoice(line string) (choice, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))
	switch choice(upper) {
	case choiceTransaction, choiceInterest, choicePrint, choiceQuit:
		return choice(upper), true
	}
	selected, ok := menuWords[upper]
	return selected, ok
}

// suggest returns the menu word closest to input when it is within
// maxHintDistance edits, or "" otherwise.
func suggest(input string) string {
	word := strings.ToUpper(strings.TrimSpace(input))
	if len(word) < 3 {
		return ""
	}

	best, bestDistance := "", maxHintDistance+1
	for candidate := range menuWords {
		distance := levenshtein.DistanceForStrings([]rune(word), []rune(candidate), levenshtein.DefaultOptions)
		if distance < bestDistance || (distance == bestDistance && candidate < best) {
			best, bestDistance = candidate, distance
		}
	}
	return strings.ToLower(best)
}
