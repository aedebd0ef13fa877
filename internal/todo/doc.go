// Package todo defines the to-do record types and request validation.
//
// A record on the wire looks like:
//
//	{
//	  "todo_id": 0,
//	  "name": "todo0",
//	  "description": "description0",
//	  "priority": 1
//	}
//
// # Validation
//
// Create and update bodies are validated against embedded JSON Schemas
// (schema/create.json, schema/update.json) before they are decoded:
//   - name: string, 3-100 characters (required on create)
//   - description: string, 5-512 characters (required on create)
//   - priority: integer 1-3 (optional; create defaults to 1)
//
// Update bodies may supply any subset of the three fields; a JSON null
// is equivalent to omitting the field.
//
// # Priority Values
//
//   - 1: low
//   - 2: medium
//   - 3: high
package todo
