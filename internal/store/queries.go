package store

// SQL query constants organized by entity.
// All SQL lives here. PostgresStore methods reference these constants.

// Vehicle queries.
const (
	queryUpsertVehicle = `
		INSERT INTO vehicles (
			vin, make, model, model_year, trim, body_class,
			engine, fuel_type, drive_type, created_at, updated_at
		) VALUES (
			@vin, @make, @model, @model_year, @trim, @body_class,
			@engine, @fuel_type, @drive_type, now(), now()
		)
		ON CONFLICT (vin) DO UPDATE SET
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			model_year = EXCLUDED.model_year,
			trim = EXCLUDED.trim,
			body_class = EXCLUDED.body_class,
			engine = EXCLUDED.engine,
			fuel_type = EXCLUDED.fuel_type,
			drive_type = EXCLUDED.drive_type,
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetVehicleByVIN = `
		SELECT id, vin, make, model, model_year,
			COALESCE(trim, ''), COALESCE(body_class, ''), COALESCE(engine, ''),
			COALESCE(fuel_type, ''), COALESCE(drive_type, ''),
			created_at, updated_at
		FROM vehicles
		WHERE vin = $1`

	queryListVehicles = `
		SELECT id, vin, make, model, model_year,
			COALESCE(trim, ''), COALESCE(body_class, ''), COALESCE(engine, ''),
			COALESCE(fuel_type, ''), COALESCE(drive_type, ''),
			created_at, updated_at
		FROM vehicles
		ORDER BY updated_at DESC
		LIMIT $1`
)

// Recall queries.
const (
	queryDeleteRecallsByVehicle = `DELETE FROM vehicle_recalls WHERE vehicle_id = $1`

	queryInsertRecall = `
		INSERT INTO vehicle_recalls (
			vehicle_id, nhtsa_campaign, component, summary,
			consequence, remedy, report_received_date, created_at
		) VALUES (
			@vehicle_id, @nhtsa_campaign, @component, @summary,
			@consequence, @remedy, @report_received_date, now()
		)`

	queryListRecallsByVehicle = `
		SELECT id, vehicle_id, nhtsa_campaign,
			COALESCE(component, ''), COALESCE(summary, ''), COALESCE(consequence, ''),
			COALESCE(remedy, ''), COALESCE(report_received_date, ''),
			created_at
		FROM vehicle_recalls
		WHERE vehicle_id = $1
		ORDER BY nhtsa_campaign DESC`
)

// Estimate queries.
const (
	queryInsertEstimate = `
		INSERT INTO price_estimates (vehicle_id, vin, source, estimate, created_at)
		VALUES (@vehicle_id, @vin, @source, @estimate, now())
		RETURNING id, created_at`

	queryGetEstimate = `
		SELECT id, vehicle_id, source, estimate, created_at
		FROM price_estimates
		WHERE id = $1`
)

// Assessment queries.
const (
	queryInsertAssessment = `
		INSERT INTO contract_assessments (contract_id, assessment, created_at)
		VALUES (@contract_id, @assessment, now())
		RETURNING id, created_at`

	queryListAssessments = `
		SELECT id, contract_id, assessment, created_at
		FROM contract_assessments
		ORDER BY created_at DESC
		LIMIT $1`
)
