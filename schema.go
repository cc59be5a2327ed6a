package journal

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// cascades lists, for an asset column, the columns denominated in that asset.
var cascades = map[Role][]Role{
	RoleBase:  {RoleBaseAmount, RoleFeeBase},
	RoleQuote: {RoleQuoteAmount, RoleFeeQuote, RolePrice},
}

// Column returns the column addressed by role.
func (j *Journal) Column(role Role) (Column, error) { return j.columns.Column(role) }

// AddExtraColumn appends col to the extra columns and to the end of the
// column order. It returns the role of the new column.
//
// Extra column names are unique: ErrDuplicateColumnName is returned if
// another extra column already has col's name.
func (j *Journal) AddExtraColumn(col ExtraColumn) (Role, error) {
	if owner, _, taken := j.extraByName(col.Title()); taken {
		return "", fmt.Errorf("extra column %q is already %s: %w", col.Title(), j.columns.DescribeRole(owner), ErrDuplicateColumnName)
	}
	role := j.columns.addExtra(col)
	j.order = append(j.order, role)
	return role, nil
}

// EditColumn replaces the column addressed by role with col.
//
// For core columns, col must be of the same kind (and description for
// decimal columns), otherwise ErrInvalidColumnEdit is returned; only its
// name, visibility and precision are applied.
//
// Extra columns are fully replaced and may change kind, but cannot take the
// name of another extra column (ErrDuplicateColumnName). Transaction values
// follow a renamed column, and values that do not match a new kind are
// dropped.
func (j *Journal) EditColumn(role Role, col Column) error {
	prev, err := j.columns.Column(role)
	if err != nil {
		return err
	}
	if owner, _, taken := j.extraByName(col.Title()); taken && owner != role && !role.IsCore() {
		return fmt.Errorf("extra column %q is already %s: %w", col.Title(), j.columns.DescribeRole(owner), ErrDuplicateColumnName)
	}
	if err := j.columns.replace(role, col); err != nil {
		return err
	}
	if role.IsCore() {
		return nil
	}
	next, _ := j.columns.Column(role)
	j.migrateExtraValues(prev.Title(), next.(ExtraColumn))
	return nil
}

// migrateExtraValues moves values from the from key to the name of col,
// dropping the ones col does not accept.
//
// A transaction that already holds a value under the new name is left
// untouched.
func (j *Journal) migrateExtraValues(from string, col ExtraColumn) {
	to := col.Title()
	for i, tx := range j.ledger.transactions {
		v, ok := tx.Extra[from]
		if !ok {
			continue
		}
		if _, taken := tx.Extra[to]; taken && to != from {
			continue
		}
		extra := maps.Clone(tx.Extra)
		delete(extra, from)
		if col.Check(v) == nil {
			extra[to] = v
		}
		j.ledger.transactions[i].Extra = extra
	}
}

// DeleteColumn deletes the extra column addressed by role, and removes it
// from the column order. Core columns cannot be deleted.
//
// Other extra columns keep their roles. Their positions, and thus their
// DescribeRole labels, shift down.
func (j *Journal) DeleteColumn(role Role) error {
	col, err := j.columns.Column(role)
	if err != nil {
		return err
	}
	if err := j.columns.removeExtra(role); err != nil {
		return err
	}
	j.order = slices.DeleteFunc(j.order, func(r Role) bool { return r == role })

	name := col.Title()
	for i, tx := range j.ledger.transactions {
		if _, ok := tx.Extra[name]; !ok {
			continue
		}
		extra := maps.Clone(tx.Extra)
		delete(extra, name)
		j.ledger.transactions[i].Extra = extra
	}
	return nil
}

// ReorderColumns replaces the column order.
//
// The order may omit columns, but every role must address a column of the
// journal and appear only once, otherwise ErrInvalidColumnOrder is returned.
func (j *Journal) ReorderColumns(order ColumnOrder) error {
	if err := checkOrder(j.columns, order); err != nil {
		return err
	}
	j.order = slices.Clone(order)
	return nil
}

func checkOrder(columns *ColumnSet, order ColumnOrder) error {
	seen := make(map[Role]bool, len(order))
	for i, role := range order {
		if !columns.Has(role) {
			return fmt.Errorf("#%d: unknown column %q: %w", i, role, ErrInvalidColumnOrder)
		}
		if seen[role] {
			return fmt.Errorf("#%d: column %q is already ordered: %w", i, role, ErrInvalidColumnOrder)
		}
		seen[role] = true
	}
	return nil
}

// SetColumnHidden hides or shows the column addressed by role.
//
// With cascade, hiding or showing the base (resp. quote) column also applies
// to the columns denominated in that asset: the amount and the fee (and the
// price for the quote). The column order is left untouched.
func (j *Journal) SetColumnHidden(role Role, hidden, cascade bool) error {
	if err := j.columns.setHidden(role, hidden); err != nil {
		return err
	}
	if !cascade {
		return nil
	}
	for _, r := range cascades[role] {
		if err := j.columns.setHidden(r, hidden); err != nil {
			return err
		}
	}
	return nil
}

// VisibleColumns returns an iterator over the columns in display order,
// skipping hidden ones.
func (j *Journal) VisibleColumns() iter.Seq2[Role, Column] {
	return func(yield func(Role, Column) bool) {
		for _, role := range j.order {
			c, err := j.columns.Column(role)
			if err != nil || c.Hidden() {
				continue
			}
			if !yield(role, c) {
				return
			}
		}
	}
}
