package database

// migrations is an ordered list of SQL migration groups. Each group runs in
// one transaction and its version is its 1-based index.
var migrations = [][]string{
	// Migration 1: workspace tables
	{
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			archived_at TEXT,
			inserted_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE attribute_types (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			slug TEXT UNIQUE NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			inserted_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`,

		`CREATE TABLE models (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			inserted_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE(project_id, slug),
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		)`,

		`CREATE TABLE attributes (
			id TEXT PRIMARY KEY,
			model_id TEXT NOT NULL,
			attribute_type_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			inserted_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE(model_id, name),
			FOREIGN KEY (model_id) REFERENCES models(id) ON DELETE CASCADE,
			FOREIGN KEY (attribute_type_id) REFERENCES attribute_types(id) ON DELETE RESTRICT
		)`,
		`CREATE INDEX idx_attributes_type ON attributes(attribute_type_id)`,

		`CREATE TABLE associations (
			id TEXT PRIMARY KEY,
			model_id TEXT NOT NULL,
			associated_model_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			kind TEXT NOT NULL CHECK (kind IN ('belongs_to', 'has_one', 'has_many')),
			inserted_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			UNIQUE(model_id, name),
			FOREIGN KEY (model_id) REFERENCES models(id) ON DELETE CASCADE,
			FOREIGN KEY (associated_model_id) REFERENCES models(id) ON DELETE CASCADE
		)`,
		`CREATE INDEX idx_associations_associated ON associations(associated_model_id)`,
	},
}

// Tables lists the workspace tables children first, the order in which they
// can be emptied without tripping foreign keys.
var Tables = []string{
	"associations",
	"attributes",
	"models",
	"attribute_types",
	"projects",
}
