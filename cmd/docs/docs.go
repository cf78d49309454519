// Package docs holds the Swagger document served under /swagger. It mirrors the
// handler annotations; rerun go generate ./cmd/arp_backend after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "get the status of server.",
                "consumes": [
                    "*/*"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "root"
                ],
                "summary": "Show the status of server.",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/fec-analysis/analyses": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Lists the analyses of the logged-in user, newest first",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "List analyses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/dto.AnalysisResponse"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list analyses",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/fec-analysis/analyses/{analysis_id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Retrieves one analysis of the logged-in user",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Get an analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Analysis ID",
                        "name": "analysis_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AnalysisResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Analysis not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve analysis",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Delete an analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Analysis ID",
                        "name": "analysis_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StatusResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Analysis not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete analysis",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/fec-analysis/analyses/{analysis_id}/export": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Downloads an analysis as a JSON attachment",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Export an analysis",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Analysis ID",
                        "name": "analysis_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AnalysisExportResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Analysis not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to export analysis",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/fec-analysis/excel-date/{serial}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Shows how a raw date cell is read by the ledger and payroll period normalizers",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Read a date cell",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Raw cell value, such as an Excel day serial",
                        "name": "serial",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PeriodProbe"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/fec-analysis/payroll/{period}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Shows the payroll block an analysis of the given period would use",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Payroll costs of a period",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Period label, such as 'Avril 2025'",
                        "name": "period",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PayrollAggregate"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/fec-analysis/statistics": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Counts the analyses of the logged-in user and lists the five most recent",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Analysis statistics",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.StatisticsResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to compute statistics",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/fec-analysis/upload": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Segments an uploaded general-ledger export (.xlsx or .csv) into the cost blocks of the monthly report and stores the result",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Analyze a FEC file",
                "parameters": [
                    {
                        "type": "file",
                        "description": "FEC export",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AnalysisUploadResponse"
                        }
                    },
                    "400": {
                        "description": "Unsupported format, missing column or empty file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to analyze file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/fec-analysis/upload-fec": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Segments an uploaded general-ledger export (.xlsx or .csv) into the cost blocks of the monthly report and stores the result",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "fec-analysis"
                ],
                "summary": "Analyze a FEC file",
                "parameters": [
                    {
                        "type": "file",
                        "description": "FEC export",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.AnalysisUploadResponse"
                        }
                    },
                    "400": {
                        "description": "Unsupported format, missing column or empty file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to analyze file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll/files": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "List payroll files",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.ListPayrollFilesResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to list payroll files",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll/files/{file_id}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Get a payroll file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payroll file ID",
                        "name": "file_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PayrollFileResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payroll file not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to retrieve payroll file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Replace the rows of a payroll file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payroll file ID",
                        "name": "file_id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Replacement rows",
                        "name": "records",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdatePayrollRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PayrollFileResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request body",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payroll file not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to update payroll file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "delete": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Delete a payroll file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payroll file ID",
                        "name": "file_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.MessageResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payroll file not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to delete payroll file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll/files/{file_id}/diagnostics": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Shows the periods and P / HP classification the aggregator reads from a payroll file",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Diagnose a payroll file",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Payroll file ID",
                        "name": "file_id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.PayrollDiagnostics"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Payroll file not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to diagnose payroll file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll/upload": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Stores a payroll export (.xlsx or .csv), or appends its rows to an existing file",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Upload a payroll cost file",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Payroll export",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Existing file to append to",
                        "name": "append_to_file_id",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PayrollUploadResponse"
                        }
                    },
                    "400": {
                        "description": "Unsupported format or empty file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Destination file not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to store payroll file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/payroll/upload-couts-salariaux": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Stores a payroll export (.xlsx or .csv), or appends its rows to an existing file",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "payroll"
                ],
                "summary": "Upload a payroll cost file",
                "parameters": [
                    {
                        "type": "file",
                        "description": "Payroll export",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "Existing file to append to",
                        "name": "append_to_file_id",
                        "in": "formData"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.PayrollUploadResponse"
                        }
                    },
                    "400": {
                        "description": "Unsupported format or empty file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Destination file not found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "413": {
                        "description": "File too large",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "500": {
                        "description": "Failed to store payroll file",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.PayrollAggregate": {
            "type": "object",
            "properties": {
                "charges_patronales_hp": {
                    "type": "number"
                },
                "charges_patronales_p": {
                    "type": "number"
                },
                "mois_annee": {
                    "type": "string"
                },
                "personnel_adm": {
                    "type": "number"
                },
                "personnel_production": {
                    "type": "number"
                },
                "supplements_hp": {
                    "type": "number"
                },
                "supplements_p": {
                    "type": "number"
                },
                "total_adm": {
                    "type": "number"
                },
                "total_production": {
                    "type": "number"
                }
            }
        },
        "domain.PayrollDiagnostics": {
            "type": "object",
            "properties": {
                "administration_count": {
                    "type": "integer"
                },
                "available_months": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "filename": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "production_count": {
                    "type": "integer"
                },
                "sample_p_hp_values": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "sample_rows": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.PayrollSampleRow"
                    }
                },
                "total_rows": {
                    "type": "integer"
                },
                "upload_date": {
                    "type": "string"
                }
            }
        },
        "domain.PayrollRecord": {
            "type": "object",
            "properties": {
                "% charge patronales": {
                    "type": "string"
                },
                "Brut": {
                    "type": "string"
                },
                "CP Pris": {
                    "type": "string"
                },
                "Charges patronales": {
                    "type": "string"
                },
                "Charges salariales": {
                    "type": "string"
                },
                "Coût global": {
                    "type": "string"
                },
                "Coût hora moyen": {
                    "type": "string"
                },
                "Effectif": {
                    "type": "string"
                },
                "Emploi": {
                    "type": "string"
                },
                "Entrée": {
                    "type": "string"
                },
                "Etablissement": {
                    "type": "string"
                },
                "Forfait jour": {
                    "type": "string"
                },
                "Heures majorées": {
                    "type": "string"
                },
                "Heures normales": {
                    "type": "string"
                },
                "Heures réelles": {
                    "type": "string"
                },
                "Heures théoriques": {
                    "type": "string"
                },
                "Matricule": {
                    "type": "string"
                },
                "Mois": {
                    "type": "string"
                },
                "Net à payer": {
                    "type": "string"
                },
                "P / HP": {
                    "type": "string"
                },
                "PAS": {
                    "type": "string"
                },
                "RTT/Réci Pris": {
                    "type": "string"
                },
                "Salarié": {
                    "type": "string"
                },
                "Service": {
                    "type": "string"
                },
                "Sortie": {
                    "type": "string"
                },
                "Suppléments coût global": {
                    "type": "string"
                },
                "Total heures": {
                    "type": "string"
                }
            }
        },
        "domain.PayrollSampleRow": {
            "type": "object",
            "properties": {
                "brut": {
                    "type": "string"
                },
                "charges_patronales": {
                    "type": "string"
                },
                "mois": {
                    "type": "string"
                },
                "mois_normalise": {
                    "type": "string"
                },
                "p_hp_normalized": {
                    "type": "string"
                },
                "p_hp_raw": {
                    "type": "string"
                },
                "salarie": {
                    "type": "string"
                },
                "service": {
                    "type": "string"
                }
            }
        },
        "domain.PeriodProbe": {
            "type": "object",
            "properties": {
                "couts_salariaux_result": {
                    "type": "string"
                },
                "excel_serial_input": {
                    "type": "string"
                },
                "fec_analysis_result": {
                    "type": "string"
                },
                "manual_calculation": {
                    "$ref": "#/definitions/domain.SerialDate"
                },
                "matches": {
                    "type": "boolean"
                }
            }
        },
        "domain.SerialDate": {
            "type": "object",
            "properties": {
                "date_calculated": {
                    "type": "string"
                },
                "day": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer"
                },
                "year": {
                    "type": "integer"
                }
            }
        },
        "dto.AnalysisExportResponse": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "results": {
                    "type": "object"
                },
                "upload_date": {
                    "type": "string"
                }
            }
        },
        "dto.AnalysisResponse": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "results": {
                    "type": "object"
                },
                "upload_date": {
                    "type": "string"
                },
                "user_id": {
                    "type": "string"
                }
            }
        },
        "dto.AnalysisUploadResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "filename": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "dto.ListPayrollFilesResponse": {
            "type": "object",
            "properties": {
                "files": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.PayrollFileInfo"
                    }
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "dto.PayrollFileInfo": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "total_records": {
                    "type": "integer"
                },
                "updated_at": {
                    "type": "string"
                },
                "uploaded_at": {
                    "type": "string"
                }
            }
        },
        "dto.PayrollFileResponse": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.PayrollRecord"
                    }
                },
                "file_info": {
                    "$ref": "#/definitions/dto.PayrollFileInfo"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.PayrollUploadResponse": {
            "type": "object",
            "properties": {
                "appended": {
                    "type": "boolean"
                },
                "file_id": {
                    "type": "string"
                },
                "success": {
                    "type": "boolean"
                },
                "total_records": {
                    "type": "integer"
                }
            }
        },
        "dto.RecentAnalysis": {
            "type": "object",
            "properties": {
                "filename": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "upload_date": {
                    "type": "string"
                }
            }
        },
        "dto.StatisticsResponse": {
            "type": "object",
            "properties": {
                "recent_analyses": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.RecentAnalysis"
                    }
                },
                "total_analyses": {
                    "type": "integer"
                }
            }
        },
        "dto.StatusResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                }
            }
        },
        "dto.UpdatePayrollRequest": {
            "type": "object",
            "required": [
                "data"
            ],
            "properties": {
                "data": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.PayrollRecord"
                    }
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "ARP Backend API",
	Description:      "FEC general-ledger analysis and payroll cost files.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
