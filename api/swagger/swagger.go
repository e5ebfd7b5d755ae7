package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Elite Driving Institute API",
        "description": "Course catalogue and registration API for the driving school site",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Student intake and lookup"},
        {"name": "Courses", "description": "Course catalogue"},
        {"name": "Registrations", "description": "Course registrations"},
        {"name": "Payments", "description": "Payment records"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/students": {
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "EMAIL_EXISTS", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student with registrations",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentDetail"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/students/email/{email}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student by email",
                "parameters": [
                    {"name": "email", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List active courses",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/courses/{id}/roster.csv": {
            "get": {
                "tags": ["Courses"],
                "summary": "Export course roster as CSV",
                "produces": ["text/csv"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "CSV roster"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/registrations": {
            "post": {
                "tags": ["Registrations"],
                "summary": "Register a student on a course",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateRegistrationRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/RegistrationDetail"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Student or course not found", "schema": {"$ref": "#/definitions/APIError"}},
                    "409": {"description": "COURSE_FULL", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/registrations/{id}": {
            "get": {
                "tags": ["Registrations"],
                "summary": "Get registration with details",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegistrationDetail"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/registrations/{id}/status": {
            "patch": {
                "tags": ["Registrations"],
                "summary": "Update registration status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegistrationDetail"}},
                    "400": {"description": "Invalid status", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/registrations/{id}/payment-status": {
            "patch": {
                "tags": ["Registrations"],
                "summary": "Update registration payment status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePaymentStatusRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/RegistrationDetail"}},
                    "400": {"description": "Invalid payment status", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments": {
            "post": {
                "tags": ["Payments"],
                "summary": "Record a payment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreatePaymentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Payment"}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Registration not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/registration/{registrationId}": {
            "get": {
                "tags": ["Payments"],
                "summary": "Get payment for a registration",
                "parameters": [
                    {"name": "registrationId", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Payment"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/{id}/status": {
            "patch": {
                "tags": ["Payments"],
                "summary": "Update payment status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePaymentRecordRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Payment"}},
                    "400": {"description": "Invalid payment status", "schema": {"$ref": "#/definitions/APIError"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        },
        "/payments/{id}/receipt": {
            "get": {
                "tags": ["Payments"],
                "summary": "Download a payment receipt as PDF",
                "produces": ["application/pdf"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "PDF receipt"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/APIError"}}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "drivingExperience": {"type": "string"},
                "comments": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "StudentDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "registrations": {
                    "type": "array",
                    "items": {"$ref": "#/definitions/RegistrationSummary"}
                }
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "type": {"type": "string"},
                "duration": {"type": "string"},
                "capacity": {"type": "integer"},
                "price": {"type": "string"},
                "features": {"type": "array", "items": {"type": "string"}},
                "isActive": {"type": "integer"}
            }
        },
        "Registration": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "courseId": {"type": "string"},
                "preferredStartDate": {"type": "string"},
                "status": {"type": "string"},
                "paymentStatus": {"type": "string"},
                "registrationDate": {"type": "string"}
            }
        },
        "RegistrationSummary": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "string"},
                "course": {"$ref": "#/definitions/Course"},
                "payment": {"$ref": "#/definitions/Payment"}
            }
        },
        "RegistrationDetail": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "status": {"type": "string"},
                "paymentStatus": {"type": "string"},
                "student": {"$ref": "#/definitions/Student"},
                "course": {"$ref": "#/definitions/Course"},
                "payment": {"$ref": "#/definitions/Payment"}
            }
        },
        "Payment": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "registrationId": {"type": "string"},
                "amount": {"type": "string"},
                "currency": {"type": "string"},
                "stripePaymentIntentId": {"type": "string"},
                "status": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        },
        "CreateStudentRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "dateOfBirth": {"type": "string"},
                "drivingExperience": {"type": "string", "enum": ["none", "beginner", "intermediate", "experienced"]},
                "comments": {"type": "string"}
            },
            "required": ["firstName", "lastName", "email", "phone", "dateOfBirth"]
        },
        "CreateRegistrationRequest": {
            "type": "object",
            "properties": {
                "studentId": {"type": "string"},
                "courseId": {"type": "string"},
                "preferredStartDate": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "confirmed", "completed", "cancelled"]},
                "paymentStatus": {"type": "string", "enum": ["pending", "paid", "failed"]}
            },
            "required": ["studentId", "courseId"]
        },
        "CreatePaymentRequest": {
            "type": "object",
            "properties": {
                "registrationId": {"type": "string"},
                "amount": {"type": "string"},
                "currency": {"type": "string"},
                "stripePaymentIntentId": {"type": "string"},
                "status": {"type": "string", "enum": ["pending", "succeeded", "failed", "cancelled"]}
            },
            "required": ["registrationId", "amount"]
        },
        "UpdateStatusRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "confirmed", "completed", "cancelled"]}
            },
            "required": ["status"]
        },
        "UpdatePaymentStatusRequest": {
            "type": "object",
            "properties": {
                "paymentStatus": {"type": "string", "enum": ["pending", "paid", "failed"]}
            },
            "required": ["paymentStatus"]
        },
        "UpdatePaymentRecordRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "enum": ["pending", "succeeded", "failed", "cancelled"]},
                "stripePaymentIntentId": {"type": "string"}
            },
            "required": ["status"]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "code": {"type": "string"},
                "details": {"type": "array", "items": {"type": "string"}},
                "validStatuses": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
