package services

// Services defined in this package:
// - CatalogService: serves the course catalog
// - RequirementService: serves the degree requirement tree
// - ProgressService: reconciles selection state into progress rollups
// - PlanService: saves and retrieves per-student degree plans
// - IngestService: parses RTF/PDF catalog documents
