// Package docs registra la especificación Swagger que sirve /swagger/*.
// Se mantiene a la par de las anotaciones godoc de los handlers; el test del
// router verifica que cada ruta montada esté documentada.
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
        "/admin": {
            "get": {
                "summary": "Dashboard del back-office",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/admin.Stats"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/admin/api/breeds": {
            "get": {
                "summary": "Listar razas (admin)",
                "description": "Cada raza con la cantidad de gatitos y de disponibles.",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/listResponse-catalog_BreedSummary"
                        }
                    }
                }
            },
            "post": {
                "summary": "Alta de raza",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Raza; description opcional",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.BreedInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/catalog.Breed"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/admin/api/breeds/{id}": {
            "get": {
                "summary": "Detalle de raza (admin)",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Breed"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "put": {
                "summary": "Edición de raza",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Raza completa",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.BreedInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Breed"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Baja de raza",
                "tags": [
                    "admin"
                ],
                "parameters": [
                    {
                        "description": "ID de la raza",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/admin/api/inquiries": {
            "get": {
                "summary": "Listar consultas (admin)",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Máximo de consultas, por defecto 100",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/inquiries.Inquiry"
                            }
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/admin/api/inquiries/export": {
            "get": {
                "summary": "Exportar consultas a XLSX (admin)",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/admin/api/kittens": {
            "get": {
                "summary": "Listar gatitos (admin)",
                "description": "Todos los gatitos, disponibles o no, más nuevos primero.",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/listResponse-catalog_Kitten"
                        }
                    }
                }
            },
            "post": {
                "summary": "Alta de gatito",
                "description": "Form multipart. La imagen se sube al CDN antes de insertar la fila.",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Imagen principal",
                        "name": "image",
                        "in": "formData",
                        "required": true,
                        "type": "file"
                    },
                    {
                        "description": "Nombre",
                        "name": "name",
                        "in": "formData",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Raza",
                        "name": "breed",
                        "in": "formData",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "male o female",
                        "name": "gender",
                        "in": "formData",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Edad en semanas",
                        "name": "age_weeks",
                        "in": "formData",
                        "type": "integer"
                    },
                    {
                        "description": "Precio",
                        "name": "price",
                        "in": "formData",
                        "type": "number"
                    },
                    {
                        "description": "Descripción",
                        "name": "description",
                        "in": "formData",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Disponible",
                        "name": "is_available",
                        "in": "formData",
                        "type": "boolean"
                    },
                    {
                        "description": "URLs adicionales",
                        "name": "extra_image_urls",
                        "in": "formData",
                        "type": "array",
                        "items": {
                            "type": "string"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/catalog.Kitten"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "502": {
                        "description": "Bad Gateway",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/admin/api/kittens/{id}": {
            "get": {
                "summary": "Detalle de gatito (admin)",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID del gatito",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Kitten"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Baja de gatito",
                "description": "Borra la fila. La imagen queda en el CDN.",
                "tags": [
                    "admin"
                ],
                "parameters": [
                    {
                        "description": "ID del gatito",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "put": {
                "summary": "Edición de gatito",
                "description": "Reemplaza los campos editables. Sin ` + "`" + `image` + "`" + ` se conserva la imagen actual.",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID del gatito",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Nueva imagen principal",
                        "name": "image",
                        "in": "formData",
                        "type": "file"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Kitten"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/admin/api/testimonials": {
            "get": {
                "summary": "Listar testimonios (admin)",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/listResponse-catalog_Testimonial"
                        }
                    }
                }
            },
            "post": {
                "summary": "Alta de testimonio",
                "description": "rating entre 1 y 5; avatar y kittenName vacíos se guardan como NULL.",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Testimonio",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.TestimonialInput"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/catalog.Testimonial"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/admin/api/testimonials/{id}": {
            "get": {
                "summary": "Detalle de testimonio (admin)",
                "tags": [
                    "admin"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID del testimonio",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Testimonial"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "put": {
                "summary": "Edición de testimonio",
                "tags": [
                    "admin"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID del testimonio",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "description": "Testimonio completo",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/admin.TestimonialInput"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Testimonial"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            },
            "delete": {
                "summary": "Baja de testimonio",
                "tags": [
                    "admin"
                ],
                "parameters": [
                    {
                        "description": "ID del testimonio",
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object"
                        }
                    }
                }
            }
        },
        "/api/breeds": {
            "get": {
                "summary": "Listar razas",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/listResponse-catalog_Breed"
                        }
                    }
                }
            }
        },
        "/api/contact": {
            "post": {
                "summary": "Enviar consulta de contacto",
                "description": "Valida nombre, email y mensaje, guarda la consulta y avisa al operador por email. Si el email falla la consulta igual queda guardada y se responde éxito.",
                "tags": [
                    "contact"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Consulta; phone y breed son opcionales",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/inquiries.submitInquiryRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object"
                        }
                    },
                    "400": {
                        "description": "Missing required fields / Invalid email address",
                        "schema": {
                            "$ref": "#/definitions/inquiries.errorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to save inquiry / Invalid request",
                        "schema": {
                            "$ref": "#/definitions/inquiries.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/imagekit-auth": {
            "get": {
                "summary": "Parámetros de subida a ImageKit",
                "description": "Devuelve token, expire (unix, +30 min) y signature HMAC-SHA1 junto con la public key, para subir imágenes directo al CDN.",
                "tags": [
                    "uploads"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/media.UploadAuth"
                        }
                    },
                    "500": {
                        "description": "ImageKit not configured",
                        "schema": {
                            "$ref": "#/definitions/uploads.errorResponse"
                        }
                    }
                }
            }
        },
        "/api/kittens": {
            "get": {
                "summary": "Listar gatitos",
                "description": "Lista los gatitos del catálogo, más nuevos primero. Los filtros se combinan con AND; ` + "`" + `all` + "`" + ` o vacío no filtra. La raza se compara sin distinguir mayúsculas contra las razas cargadas. Una raza que no coincide con ninguna desactiva el filtro de raza y se listan todas. Si las razas no se pudieron cargar se filtra por el valor recibido y la respuesta lleva load_failed.",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Nombre de raza o all; una raza desconocida no filtra",
                        "name": "breed",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "male, female o all",
                        "name": "gender",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "description": "Solo disponibles",
                        "name": "available",
                        "in": "query",
                        "type": "boolean"
                    },
                    {
                        "description": "Máximo de filas a traer del store",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/listResponse-catalog_Kitten"
                        }
                    },
                    "400": {
                        "description": "limit inválido",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/kittens/featured": {
            "get": {
                "summary": "Gatitos destacados",
                "description": "Los gatitos disponibles más recientes para la home (3 por defecto).",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Cantidad a devolver",
                        "name": "limit",
                        "in": "query",
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/listResponse-catalog_Kitten"
                        }
                    },
                    "400": {
                        "description": "limit inválido",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/kittens/{kittenID}": {
            "get": {
                "summary": "Detalle de gatito",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "ID del gatito",
                        "name": "kittenID",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/catalog.Kitten"
                        }
                    },
                    "404": {
                        "description": "kitten not found",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "500": {
                        "description": "internal error",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/testimonials": {
            "get": {
                "summary": "Listar testimonios",
                "tags": [
                    "catalog"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/listResponse-catalog_Testimonial"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "get": {
                "summary": "Descriptor de login",
                "description": "Indica a dónde volver después del login. Con sesión activa el gate redirige a /admin.",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Path al que volver (solo mismo sitio)",
                        "name": "redirect",
                        "in": "query",
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/session.redirectResponse"
                        }
                    },
                    "302": {
                        "description": "ya autenticado",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "post": {
                "summary": "Iniciar sesión admin",
                "description": "Valida email y password contra el proveedor de auth y deja las cookies de sesión.",
                "tags": [
                    "auth"
                ],
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Credenciales; redirect opcional",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/session.loginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/session.redirectResponse"
                        }
                    },
                    "400": {
                        "description": "invalid json",
                        "schema": {
                            "$ref": "#/definitions/session.errorResponse"
                        }
                    },
                    "401": {
                        "description": "Invalid email or password",
                        "schema": {
                            "$ref": "#/definitions/session.errorResponse"
                        }
                    },
                    "503": {
                        "description": "auth provider unavailable",
                        "schema": {
                            "$ref": "#/definitions/session.errorResponse"
                        }
                    }
                }
            }
        },
        "/auth/logout": {
            "post": {
                "summary": "Cerrar sesión admin",
                "tags": [
                    "auth"
                ],
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/session.redirectResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "ops"
                ],
                "summary": "Healthcheck",
                "responses": {
                    "200": {
                        "description": "ok"
                    }
                }
            }
        }
    },
    "definitions": {
        "admin.BreedInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "admin.Stats": {
            "type": "object",
            "properties": {
                "totalKittens": {
                    "type": "integer"
                },
                "availableKittens": {
                    "type": "integer"
                },
                "breeds": {
                    "type": "integer"
                },
                "inquiries": {
                    "type": "integer"
                }
            }
        },
        "admin.TestimonialInput": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                },
                "kittenName": {
                    "type": "string"
                }
            }
        },
        "catalog.Breed": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                }
            }
        },
        "catalog.BreedSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "kittenCount": {
                    "type": "integer"
                },
                "availableCount": {
                    "type": "integer"
                }
            }
        },
        "catalog.Kitten": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "gender": {
                    "type": "string",
                    "enum": [
                        "male",
                        "female"
                    ]
                },
                "ageWeeks": {
                    "type": "integer"
                },
                "price": {
                    "type": "number"
                },
                "description": {
                    "type": "string"
                },
                "mainImageUrl": {
                    "type": "string"
                },
                "extraImageUrls": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isAvailable": {
                    "type": "boolean"
                }
            }
        },
        "catalog.Testimonial": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "location": {
                    "type": "string"
                },
                "rating": {
                    "type": "integer"
                },
                "text": {
                    "type": "string"
                },
                "avatar": {
                    "type": "string"
                },
                "kittenName": {
                    "type": "string"
                }
            }
        },
        "inquiries.Inquiry": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "breedInterest": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "createdAt": {
                    "type": "string"
                }
            }
        },
        "inquiries.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "inquiries.submitInquiryRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "phone": {
                    "type": "string"
                },
                "breed": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "listResponse-catalog_Breed": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.Breed"
                    }
                },
                "load_failed": {
                    "type": "boolean"
                }
            }
        },
        "listResponse-catalog_BreedSummary": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.BreedSummary"
                    }
                },
                "load_failed": {
                    "type": "boolean"
                }
            }
        },
        "listResponse-catalog_Kitten": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.Kitten"
                    }
                },
                "load_failed": {
                    "type": "boolean"
                }
            }
        },
        "listResponse-catalog_Testimonial": {
            "type": "object",
            "properties": {
                "items": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/catalog.Testimonial"
                    }
                },
                "load_failed": {
                    "type": "boolean"
                }
            }
        },
        "media.UploadAuth": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "expire": {
                    "type": "integer"
                },
                "signature": {
                    "type": "string"
                },
                "publicKey": {
                    "type": "string"
                }
            }
        },
        "session.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "session.loginRequest": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                },
                "redirect": {
                    "type": "string"
                }
            }
        },
        "session.redirectResponse": {
            "type": "object",
            "properties": {
                "redirect": {
                    "type": "string"
                }
            }
        },
        "uploads.errorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Cattery Storefront API",
	Description:      "Catálogo público, consultas y back-office de la criadería.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
