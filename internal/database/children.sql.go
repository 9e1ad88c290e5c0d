package database

import (
	"context"
)

const listIngredients = `
SELECT id, recipe_id, name, quantity, sort_order
FROM ingredients
WHERE recipe_id = $1
ORDER BY sort_order, id
`

func (q *Queries) ListIngredients(ctx context.Context, recipeID int64) ([]Ingredient, error) {
	rows, err := q.db.Query(ctx, listIngredients, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Ingredient{}
	for rows.Next() {
		var i Ingredient
		if err := rows.Scan(
			&i.ID,
			&i.RecipeID,
			&i.Name,
			&i.Quantity,
			&i.Order,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createIngredient = `
INSERT INTO ingredients (recipe_id, name, quantity, sort_order)
VALUES ($1, $2, $3, $4)
RETURNING id, recipe_id, name, quantity, sort_order
`

type CreateIngredientParams struct {
	RecipeID int64
	Name     string
	Quantity string
	Order    int32
}

func (q *Queries) CreateIngredient(ctx context.Context, arg CreateIngredientParams) (Ingredient, error) {
	row := q.db.QueryRow(ctx, createIngredient,
		arg.RecipeID,
		arg.Name,
		arg.Quantity,
		arg.Order,
	)
	var i Ingredient
	err := row.Scan(
		&i.ID,
		&i.RecipeID,
		&i.Name,
		&i.Quantity,
		&i.Order,
	)
	return i, err
}

const deleteIngredients = `
DELETE FROM ingredients WHERE recipe_id = $1
`

func (q *Queries) DeleteIngredients(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, deleteIngredients, recipeID)
	return err
}

const listInstructions = `
SELECT id, recipe_id, step_number, description
FROM instructions
WHERE recipe_id = $1
ORDER BY step_number, id
`

func (q *Queries) ListInstructions(ctx context.Context, recipeID int64) ([]Instruction, error) {
	rows, err := q.db.Query(ctx, listInstructions, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Instruction{}
	for rows.Next() {
		var i Instruction
		if err := rows.Scan(
			&i.ID,
			&i.RecipeID,
			&i.StepNumber,
			&i.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createInstruction = `
INSERT INTO instructions (recipe_id, step_number, description)
VALUES ($1, $2, $3)
RETURNING id, recipe_id, step_number, description
`

type CreateInstructionParams struct {
	RecipeID    int64
	StepNumber  int32
	Description string
}

func (q *Queries) CreateInstruction(ctx context.Context, arg CreateInstructionParams) (Instruction, error) {
	row := q.db.QueryRow(ctx, createInstruction, arg.RecipeID, arg.StepNumber, arg.Description)
	var i Instruction
	err := row.Scan(
		&i.ID,
		&i.RecipeID,
		&i.StepNumber,
		&i.Description,
	)
	return i, err
}

const deleteInstructions = `
DELETE FROM instructions WHERE recipe_id = $1
`

func (q *Queries) DeleteInstructions(ctx context.Context, recipeID int64) error {
	_, err := q.db.Exec(ctx, deleteInstructions, recipeID)
	return err
}
